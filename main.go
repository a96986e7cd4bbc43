package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/blockweld/blockweld/internal/app"
	"github.com/blockweld/blockweld/internal/watch"
)

var version = "v0.2.0"

func main() {
	var root string
	var since string
	var verbose bool

	commonFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Aliases:     []string{"r"},
			Value:       ".",
			Usage:       "Path to the project root",
			Destination: &root,
		},
		&cli.StringFlag{
			Name:        "since",
			Usage:       "Only rewrite files changed since this git ref",
			Destination: &since,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Extra console messages",
			Destination: &verbose,
		},
	}

	newApp := func(dryRun bool) *app.App {
		return app.New(app.Config{
			RootDir:       root,
			Since:         since,
			DryRun:        dryRun,
			Verbose:       verbose,
			InfoBuffer:    os.Stdout,
			WarningBuffer: os.Stderr,
		})
	}

	cliApp := &cli.App{
		Name:    "blockweld",
		Usage:   "Merge machine-generated comment blocks across source files",
		Version: version,
		Description: "Files declare named template blocks with `// @block_default <id>` ... `// @endblock`;\n" +
			"other files override them with `// @block_replace <id>` or extend them with\n" +
			"`// @block_append <id>`. blockweld resolves every block and rewrites only the\n" +
			"generated region of each file.",
		Commands: []*cli.Command{
			{
				Name:    "merge",
				Aliases: []string{"m"},
				Usage:   "Resolve all blocks and rewrite files in place",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "Report what would change without writing",
					},
				}, commonFlags...),
				Action: func(cCtx *cli.Context) error {
					summary, err := newApp(cCtx.Bool("dry-run")).Run()
					if err != nil {
						return err
					}
					fmt.Printf("%d files scanned, %d blocks, %d rewritten\n",
						summary.Scanned, summary.Blocks, len(summary.Changed))
					return nil
				},
			},
			{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Fail when a merge would change any file",
				Flags:   commonFlags,
				Action: func(cCtx *cli.Context) error {
					verbose = true // check always shows the diff
					summary, err := newApp(true).Run()
					if err != nil {
						return err
					}
					if len(summary.Changed) > 0 {
						return cli.Exit(fmt.Sprintf("%d files out of date", len(summary.Changed)), 1)
					}
					fmt.Println("All generated blocks up to date")
					return nil
				},
			},
			{
				Name:    "blocks",
				Aliases: []string{"b"},
				Usage:   "List every block identifier with its contributions",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the block list as JSON",
					},
				}, commonFlags...),
				Action: func(cCtx *cli.Context) error {
					summaries, err := newApp(true).Blocks()
					if err != nil {
						return err
					}
					if cCtx.Bool("json") {
						encoder := json.NewEncoder(os.Stdout)
						encoder.SetIndent("", "  ")
						return encoder.Encode(summaries)
					}
					for _, s := range summaries {
						declared := s.File
						if declared == "" {
							declared = "(no default)"
						}
						fmt.Printf("%s  %s  replaces=%d appends=%d lines=%d\n",
							s.Name, declared, s.Replaces, s.Appends, s.ResolvedLines)
					}
					return nil
				},
			},
			{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Merge, then re-merge whenever the tree changes",
				Flags:   commonFlags,
				Action: func(cCtx *cli.Context) error {
					run := func() {
						if _, err := newApp(false).Run(); err != nil {
							fmt.Fprintf(os.Stderr, "merge error: %v\n", err)
						}
					}
					run()
					watcher, err := watch.New(root, run, func(err error) {
						fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
					})
					if err != nil {
						return err
					}
					defer watcher.Close()
					fmt.Printf("Watching %s for changes...\n", root)
					select {}
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

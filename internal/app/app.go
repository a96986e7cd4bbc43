// Package app wires discovery, the merge engine, and write-back together.
package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/blockweld/blockweld/internal/config"
	"github.com/blockweld/blockweld/internal/git"
	"github.com/blockweld/blockweld/internal/walker"
	"github.com/blockweld/blockweld/pkg/block"
	f "github.com/blockweld/blockweld/pkg/functional"
)

// Config holds the application configuration.
type Config struct {
	RootDir       string
	Since         string
	DryRun        bool
	Verbose       bool
	InfoBuffer    io.Writer
	WarningBuffer io.Writer
}

// Summary reports what a run did.
type Summary struct {
	Scanned int      `json:"scanned"`
	Changed []string `json:"changed"`
	Skipped []string `json:"skipped"`
	Blocks  int      `json:"blocks"`
}

// BlockSummary describes one registered block identifier.
type BlockSummary struct {
	Name          string `json:"name"`
	File          string `json:"file,omitempty"`
	Replaces      int    `json:"replaces"`
	Appends       int    `json:"appends"`
	ResolvedLines int    `json:"resolved_lines"`
}

// App represents the application with its dependencies.
type App struct {
	Conf   *config.Config
	config *Config
}

var (
	rewroteTag = color.New(color.FgGreen).Sprint("rewrote")
	wouldTag   = color.New(color.FgYellow).Sprint("would rewrite")
)

// New creates a new App instance with the given configuration.
func New(cfg Config) *App {
	if cfg.InfoBuffer == nil {
		cfg.InfoBuffer = io.Discard
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	return &App{config: &cfg}
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
	}
}

func (a *App) printInfo(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
}

func (a *App) printWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.WarningBuffer, format, args...)
}

// loadSources discovers the participating files and reads their text, in
// deterministic discovery order.
func (a *App) loadSources() ([]block.SourceFile, error) {
	conf, err := config.ReadConfig(a.config.RootDir)
	if err != nil {
		a.printWarn("WARNING: error reading blockweld.toml - using default config: %v\n", err)
	}
	a.Conf = conf

	files, err := walker.Files(walker.Options{
		Root:    a.config.RootDir,
		Include: conf.Include,
		Exclude: conf.Exclude,
		Ignore:  conf.Ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery error: %w", err)
	}
	a.printDebug("Discovered %d files\n", len(files))

	sources := make([]block.SourceFile, 0, len(files))
	for _, file := range files {
		text, err := os.ReadFile(filepath.Join(a.config.RootDir, file))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		sources = append(sources, block.SourceFile{Path: file, Text: string(text)})
	}
	return sources, nil
}

// Run executes a full merge. In dry-run mode changed files are reported
// (with a unified diff when verbose) but nothing is written.
func (a *App) Run() (*Summary, error) {
	sources, err := a.loadSources()
	if err != nil {
		return nil, err
	}

	records, reg, err := block.Scan(sources, a.config.WarningBuffer)
	if err != nil {
		return nil, err
	}

	eligible := func(string) bool { return true }
	if a.config.Since != "" {
		changed, err := git.ChangedFiles(a.config.RootDir, a.config.Since)
		if err != nil {
			return nil, fmt.Errorf("changed-files error: %w", err)
		}
		a.printDebug("Files changed since %s: %v\n", a.config.Since, changed)
		changedSet := f.NewSet(changed...)
		eligible = changedSet.Contains
	}

	originals := make(map[string]string, len(sources))
	for _, src := range sources {
		originals[src.Path] = src.Text
	}

	summary := &Summary{
		Scanned: len(sources),
		Changed: []string{},
		Skipped: []string{},
		Blocks:  len(reg.Names()),
	}
	for _, rec := range records {
		patched := block.Patch(rec, reg)
		res := block.Result{Path: rec.Path, Text: block.JoinLines(patched)}
		res.Changed = res.Text != originals[rec.Path]
		if !res.Changed {
			continue
		}
		if !eligible(res.Path) {
			a.printDebug("Skipping %s: not changed since %s\n", res.Path, a.config.Since)
			summary.Skipped = append(summary.Skipped, res.Path)
			continue
		}
		if a.config.DryRun {
			a.printInfo("%s %s\n", wouldTag, res.Path)
			if a.config.Verbose {
				a.printDiff(res.Path, originals[res.Path], res.Text)
			}
		} else {
			if err := writeFilePreservingMode(filepath.Join(a.config.RootDir, res.Path), res.Text); err != nil {
				return nil, fmt.Errorf("writing %s: %w", res.Path, err)
			}
			a.printInfo("%s %s\n", rewroteTag, res.Path)
		}
		summary.Changed = append(summary.Changed, res.Path)
	}
	return summary, nil
}

// Blocks runs pass 1 only and summarizes every registered identifier in
// first-seen order.
func (a *App) Blocks() ([]BlockSummary, error) {
	sources, err := a.loadSources()
	if err != nil {
		return nil, err
	}
	_, reg, err := block.Scan(sources, a.config.WarningBuffer)
	if err != nil {
		return nil, err
	}

	summaries := make([]BlockSummary, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		info := reg.Get(name)
		summary := BlockSummary{
			Name:          name,
			Replaces:      len(info.Replaces),
			Appends:       len(info.Appends),
			ResolvedLines: len(reg.Resolve(name)),
		}
		if info.Default != nil {
			summary.File = info.Default.File
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (a *App) printDiff(path, before, after string) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		a.printWarn("WARNING: diff error for %s: %v\n", path, err)
		return
	}
	a.printInfo("%s", text)
}

func writeFilePreservingMode(path string, text string) error {
	mode := fs.FileMode(0o644)
	if stat, err := os.Stat(path); err == nil {
		mode = stat.Mode().Perm()
	}
	return os.WriteFile(path, []byte(text), mode)
}

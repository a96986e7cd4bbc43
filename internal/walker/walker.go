// Package walker discovers the files taking part in a merge.
package walker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

// Options controls a walk. Include and Exclude are doublestar patterns
// matched against paths relative to Root; an empty Include matches
// everything. Ignore lists directory names never descended into (.git is
// always skipped).
type Options struct {
	Root    string
	Include []string
	Exclude []string
	Ignore  []string
}

// Files walks the tree under Root and returns the matching paths, relative
// to Root and sorted, so discovery order is deterministic regardless of the
// order the walker emits them in.
func Files(opts Options) ([]string, error) {
	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(opts.Root, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = append([]string{".git"}, opts.Ignore...)

	errChan := make(chan error)
	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	files := make([]string, 0)
	var matchErr error
	for f := range fileListQueue {
		rel := stripRoot(opts.Root, f.Location)
		included, err := matchAny(opts.Include, rel, len(opts.Include) == 0)
		if err != nil && matchErr == nil {
			matchErr = err
		}
		if !included {
			continue
		}
		excluded, err := matchAny(opts.Exclude, rel, false)
		if err != nil && matchErr == nil {
			matchErr = err
		}
		if excluded {
			continue
		}
		files = append(files, rel)
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("walking %s: %w", opts.Root, err)
	}
	if matchErr != nil {
		return nil, matchErr
	}
	slices.Sort(files)
	return files, nil
}

func matchAny(patterns []string, path string, empty bool) (bool, error) {
	if len(patterns) == 0 {
		return empty, nil
	}
	for _, pattern := range patterns {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func stripRoot(root string, path string) string {
	if root == "." {
		return path
	}
	return strings.TrimPrefix(path, strings.TrimSuffix(root, "/")+"/")
}

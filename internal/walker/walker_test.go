package walker

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":          "package main\n",
		"notes.txt":        "notes\n",
		"sub/util.go":      "package sub\n",
		"vendor/dep.go":    "package dep\n",
		"gen/ignored.go":   "package gen\n",
		".git/objects/abc": "binary\n",
	})

	tt := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{
			name:     "include globs select files",
			opts:     Options{Root: root, Include: []string{"**/*.go"}},
			expected: []string{"gen/ignored.go", "main.go", "sub/util.go", "vendor/dep.go"},
		},
		{
			name:     "exclude globs filter matches",
			opts:     Options{Root: root, Include: []string{"**/*.go"}, Exclude: []string{"vendor/**"}},
			expected: []string{"gen/ignored.go", "main.go", "sub/util.go"},
		},
		{
			name:     "ignored directories are not walked",
			opts:     Options{Root: root, Include: []string{"**/*.go"}, Ignore: []string{"gen", "vendor"}},
			expected: []string{"main.go", "sub/util.go"},
		},
		{
			name:     "empty include matches everything but git internals",
			opts:     Options{Root: root, Exclude: []string{"vendor/**", "gen/**"}},
			expected: []string{"main.go", "notes.txt", "sub/util.go"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			files, err := Files(tc.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(files, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, files)
			}
		})
	}
}

func TestFilesBadPattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	_, err := Files(Options{Root: root, Include: []string{"[bad"}})
	if err == nil {
		t.Fatal("expected a pattern error")
	}
}

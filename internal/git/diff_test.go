package git

import (
	"errors"
	"slices"
	"testing"
)

// mockGitExecutor implements gitCommandExecutor for testing.
type mockGitExecutor struct {
	output  string
	err     error
	gotArgs []string
}

func (e *mockGitExecutor) execute(command string, args ...string) ([]byte, error) {
	e.gotArgs = append([]string{command}, args...)
	if e.err != nil {
		return nil, e.err
	}
	return []byte(e.output), nil
}

const sampleGitDiff = `diff --git a/file1.go b/file1.go
index abc..def 100644
--- a/file1.go
+++ b/file1.go
@@ -10,0 +11 @@ func Example() {
+       fmt.Println("New line")
diff --git a/sub/file2.go b/sub/file2.go
index ghi..jkl 100644
--- a/sub/file2.go
+++ b/sub/file2.go
@@ -20,0 +21,2 @@ func AnotherExample() {
+       fmt.Println("First new line")
+       fmt.Println("Second new line")`

const deletedFileDiff = `diff --git a/gone.go b/gone.go
deleted file mode 100644
index abc..000
--- a/gone.go
+++ /dev/null
@@ -1,1 +0,0 @@
-package gone`

// Paths must come back relative to the merge root, not the repository top
// level, or the app-level eligibility check never matches when the root is a
// repo subdirectory.
func TestChangedFilesPathsAreRootRelative(t *testing.T) {
	executor := &mockGitExecutor{}
	if _, err := changedFiles(executor, "main"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"git", "diff", "-U0", "--relative", "main"}
	if !slices.Equal(executor.gotArgs, expected) {
		t.Errorf("expected %v, got %v", expected, executor.gotArgs)
	}
}

func TestChangedFiles(t *testing.T) {
	tt := []struct {
		name        string
		mockOutput  string
		mockErr     error
		expected    []string
		expectedErr bool
	}{
		{
			name:       "files from a multi-file diff",
			mockOutput: sampleGitDiff,
			expected:   []string{"file1.go", "sub/file2.go"},
		},
		{
			name:       "empty diff yields no files",
			mockOutput: "",
			expected:   []string{},
		},
		{
			name:       "deleted files are filtered out",
			mockOutput: deletedFileDiff,
			expected:   []string{},
		},
		{
			name:        "executor error propagates",
			mockErr:     errors.New("not a git repository"),
			expectedErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			files, err := changedFiles(&mockGitExecutor{output: tc.mockOutput, err: tc.mockErr}, "main")
			if (err != nil) != tc.expectedErr {
				t.Fatalf("expected error=%v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr {
				return
			}
			if !slices.Equal(files, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, files)
			}
		})
	}
}

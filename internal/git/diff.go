// Package git answers which files changed since a ref, so merges can be
// restricted to files a change actually touched.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	f "github.com/blockweld/blockweld/pkg/functional"
	"github.com/sourcegraph/go-diff/diff"
)

// gitCommandExecutor abstracts git invocation for testing.
type gitCommandExecutor interface {
	execute(command string, args ...string) ([]byte, error)
}

type realGitExecutor struct {
	dir string
}

func newRealGitExecutor(dir string) *realGitExecutor {
	return &realGitExecutor{dir: dir}
}

func (e *realGitExecutor) execute(command string, args ...string) ([]byte, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = e.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %s\n%s", command, strings.Join(args, " "), err, output)
	}
	return output, nil
}

// ChangedFiles returns the paths touched between ref and the working tree,
// relative to dir.
func ChangedFiles(dir string, ref string) ([]string, error) {
	return changedFiles(newRealGitExecutor(dir), ref)
}

func changedFiles(executor gitCommandExecutor, ref string) ([]string, error) {
	// --relative keeps paths relative to the executor's working directory,
	// the merge root, so they compare against walker paths.
	output, err := executor.execute("git", "diff", "-U0", "--relative", ref)
	if err != nil {
		return nil, err
	}
	fileDiffs, err := diff.ParseMultiFileDiff(output)
	if err != nil {
		return nil, err
	}
	names := f.Map(fileDiffs, func(d *diff.FileDiff) string {
		return strings.TrimPrefix(d.NewName, "b/")
	})
	// Deleted files diff to /dev/null and cannot be merge targets.
	return f.Filtered(names, func(name string) bool {
		return name != "/dev/null"
	}), nil
}

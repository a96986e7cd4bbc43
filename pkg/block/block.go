// Package block implements the two-pass merge engine: pass 1 scans every
// file for block occurrences and accumulates them in a registry, pass 2
// resolves each named block and patches only the generated region of each
// file, leaving every other byte untouched.
package block

import (
	"strings"

	"github.com/blockweld/blockweld/pkg/directive"
)

// Role is the contribution a block occurrence makes to its identifier.
type Role int

const (
	// RoleDefault declares the block with default template content.
	RoleDefault Role = iota
	// RoleEmpty declares the block with no template body.
	RoleEmpty
	// RoleReplace fully supersedes the default content.
	RoleReplace
	// RoleAppend extends whatever content the block resolves to.
	RoleAppend
)

func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleEmpty:
		return "empty"
	case RoleReplace:
		return "replace"
	case RoleAppend:
		return "append"
	}
	return "unknown"
}

// Occurrence is one concrete sighting of a block-opening directive.
// End is the line index of the matching @endblock for the Default and Empty
// roles (len(lines) when the block is unterminated) and the first line after
// the extracted body for Replace and Append. Indent is the comment indent
// width of the opening directive line.
type Occurrence struct {
	Role    Role
	Name    string
	File    string
	Start   int
	End     int
	Indent  int
	Content []directive.ContentLine
}

// FileRecord is one scanned file: its original lines plus the occurrences
// found in it, in the order encountered.
type FileRecord struct {
	Path        string
	Lines       []string
	Occurrences []*Occurrence
}

// SourceFile is one engine input: a file handle and its full text.
type SourceFile struct {
	Path string
	Text string
}

// Result is the engine's verdict for one input file. Text is set only when
// Changed is true; the caller is responsible for persisting it.
type Result struct {
	Path    string
	Changed bool
	Text    string
}

// SplitLines splits full file text into lines. A trailing newline yields a
// trailing empty element, so JoinLines restores the text exactly.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Package directive recognizes blockweld directive comments and extracts
// the indentation-sensitive template content that follows them.
//
// A directive is a `//` comment whose first token is an @-command:
//
//	// @block_default <id>
//	// @block <id>
//	// @block_replace <id>
//	// @block_append <id>
//	// @endblock
//
// Arbitrary spaces are allowed between `//` and `@` and between the command
// and the identifier; nothing but trailing spaces may follow the identifier.
// Unknown @-commands are recognized but ignored, reserved for forward
// compatibility.
package directive

import (
	"fmt"
	"strings"
)

// Kind is the classification of a single line.
type Kind int

const (
	// None marks a line that is not a directive at all.
	None Kind = iota
	// Default opens a named block with default template content (@block_default).
	Default
	// Empty opens a named block with no template body (@block).
	Empty
	// Replace contributes replacement content for a named block (@block_replace).
	Replace
	// Append contributes additional content for a named block (@block_append).
	Append
	// End closes a Default or Empty block span (@endblock).
	End
	// Other is any unrecognized @-command.
	Other
)

// Directive is the result of recognizing one line. Name is set only for the
// four block-role kinds.
type Directive struct {
	Kind Kind
	Name string
}

// MalformedError reports a block-role directive with the wrong number of
// arguments. It is fatal: the caller must abort the whole run.
type MalformedError struct {
	Command string
	Args    int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("@%s requires exactly one block identifier, got %d arguments", e.Command, e.Args)
}

// SplitComment splits a comment line into the run of spaces that follows the
// `//` marker and the text after them. Leading and trailing whitespace on the
// line is ignored. ok is false when the line is not a `//` comment.
func SplitComment(line string) (indent, text string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return "", "", false
	}
	body := trimmed[2:]
	text = strings.TrimLeft(body, " ")
	return body[:len(body)-len(text)], text, true
}

// IndentWidth returns the comment indent width of a directive line: the
// number of spaces between `//` and the `@` command.
func IndentWidth(line string) int {
	indent, _, _ := SplitComment(line)
	return len(indent)
}

// Recognize classifies one line. The returned error is a *MalformedError
// when a block-role command carries the wrong argument count; every other
// line shape, including unknown @-commands, recognizes cleanly.
func Recognize(line string) (Directive, error) {
	_, text, ok := SplitComment(line)
	if !ok || !strings.HasPrefix(text, "@") {
		return Directive{}, nil
	}
	fields := strings.Fields(text)
	command := strings.TrimPrefix(fields[0], "@")
	switch command {
	case "block_default", "block", "block_replace", "block_append":
		if len(fields) != 2 {
			return Directive{}, &MalformedError{Command: command, Args: len(fields) - 1}
		}
		kind := map[string]Kind{
			"block_default": Default,
			"block":         Empty,
			"block_replace": Replace,
			"block_append":  Append,
		}[command]
		return Directive{Kind: kind, Name: fields[1]}, nil
	case "endblock":
		// Trailing tokens after @endblock are not validated.
		return Directive{Kind: End}, nil
	default:
		return Directive{Kind: Other}, nil
	}
}

package directive

import "strings"

// ContentLine is one normalized template-body line. Blank marks a comment
// line with no text after the marker (`//` alone); such lines instantiate as
// empty lines no matter where the block lands.
type ContentLine struct {
	Text  string
	Blank bool
}

// Extract consumes the contiguous run of template comment lines starting at
// start and returns the normalized content plus the index of the first line
// it did not consume. openIndent is the comment indent width of the opening
// directive line; only comment lines indented at least that far (or bare `//`
// lines) belong to the run.
//
// The template indent is the comment-internal space prefix of the first
// accepted non-blank line. It is stripped from every subsequent line that
// carries it, so deeper indentation survives as literal content; a line
// indented less than the template indent emits at column zero.
//
// The run ends, without consuming the line, at any recognized directive, any
// non-comment line, or a comment line indented shallower than openIndent.
// A malformed directive inside the run is fatal and surfaces as the error.
func Extract(lines []string, start, openIndent int) ([]ContentLine, int, error) {
	content := make([]ContentLine, 0)
	templateIndent := ""
	haveTemplate := false

	i := start
	for ; i < len(lines); i++ {
		d, err := Recognize(lines[i])
		if err != nil {
			return nil, i, err
		}
		if d.Kind != None {
			break
		}
		indent, text, ok := SplitComment(lines[i])
		if !ok {
			break
		}
		if text == "" {
			// Bare `//` is always part of the run, whatever its indent.
			content = append(content, ContentLine{Blank: true})
			continue
		}
		if len(indent) < openIndent {
			break
		}
		if !haveTemplate {
			templateIndent = indent
			haveTemplate = true
		}
		body := indent + text
		if strings.HasPrefix(body, templateIndent) {
			content = append(content, ContentLine{Text: body[len(templateIndent):]})
		} else {
			content = append(content, ContentLine{Text: text})
		}
	}
	return content, i, nil
}

package block

import (
	"slices"
	"strings"

	"github.com/blockweld/blockweld/pkg/directive"
)

// edit replaces the half-open line range [start, end) with lines.
type edit struct {
	start int
	end   int
	lines []string
}

// Patch splices resolved content into every rewrite target of a file and
// returns the new line sequence. Only Default and Empty occurrences are
// rewrite targets; Replace and Append occurrences are pure input and their
// source lines are left exactly as they were. The original slice is never
// mutated.
func Patch(rec *FileRecord, reg *Registry) []string {
	edits := make([]edit, 0, len(rec.Occurrences))
	for _, occ := range rec.Occurrences {
		if occ.Role != RoleDefault && occ.Role != RoleEmpty {
			continue
		}
		edits = append(edits, spliceFor(rec.Lines, occ, reg.Resolve(occ.Name)))
	}
	return applyEdits(rec.Lines, edits)
}

// spliceFor computes the pending edit for one rewrite target.
//
// For a default block the leading run of template comment lines (comment,
// non-empty, not an @-command, indented at least as far as the opening
// directive) is kept verbatim; the splice starts at the first line that is
// not such a comment. An empty marker has no template body, so its whole
// interior is replaced.
//
// Generated lines take the indentation of the first pre-existing generated
// code line in the span; blank content lines emit as empty lines.
func spliceFor(lines []string, occ *Occurrence, resolved []directive.ContentLine) edit {
	start := occ.Start + 1
	end := min(occ.End, len(lines))

	if occ.Role == RoleDefault {
		for start < end {
			indent, text, ok := directive.SplitComment(lines[start])
			if !ok || text == "" || strings.HasPrefix(text, "@") || len(indent) < occ.Indent {
				break
			}
			start++
		}
	}

	indent := spanIndent(lines[occ.Start+1 : end])
	replacement := make([]string, 0, len(resolved))
	for _, cl := range resolved {
		if cl.Blank || cl.Text == "" {
			replacement = append(replacement, "")
		} else {
			replacement = append(replacement, indent+cl.Text)
		}
	}
	return edit{start: start, end: end, lines: replacement}
}

// spanIndent returns the leading whitespace of the first non-blank,
// non-comment line in the original span, or "" when the span holds no
// generated code yet.
func spanIndent(span []string) string {
	for _, line := range span {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, _, ok := directive.SplitComment(line); ok {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		return line[:len(line)-len(trimmed)]
	}
	return ""
}

// applyEdits applies pending edits from the highest start index to the
// lowest, so earlier splices never invalidate later indices. Occurrences are
// scanned top to bottom and never overlap, so sorting by start is enough.
func applyEdits(lines []string, edits []edit) []string {
	slices.SortFunc(edits, func(a, b edit) int { return b.start - a.start })
	result := slices.Clone(lines)
	for _, e := range edits {
		merged := make([]string, 0, e.start+len(e.lines)+len(result)-e.end)
		merged = append(merged, result[:e.start]...)
		merged = append(merged, e.lines...)
		merged = append(merged, result[e.end:]...)
		result = merged
	}
	return result
}

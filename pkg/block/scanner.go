package block

import (
	"fmt"
	"io"

	"github.com/blockweld/blockweld/pkg/directive"
)

// ScanFile walks one file's lines left to right, registering every block
// occurrence in both the returned FileRecord and the shared registry.
// Warnings (currently only unterminated blocks) are written to warn.
// A malformed directive anywhere in the file is fatal and aborts the scan.
func ScanFile(path string, lines []string, reg *Registry, warn io.Writer) (*FileRecord, error) {
	rec := &FileRecord{Path: path, Lines: lines}

	i := 0
	for i < len(lines) {
		d, err := directive.Recognize(lines[i])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}

		switch d.Kind {
		case directive.Default, directive.Empty:
			occ := &Occurrence{
				Role:   RoleDefault,
				Name:   d.Name,
				File:   path,
				Start:  i,
				Indent: directive.IndentWidth(lines[i]),
			}
			if d.Kind == directive.Empty {
				occ.Role = RoleEmpty
			} else {
				content, stop, err := directive.Extract(lines, i+1, occ.Indent)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, stop+1, err)
				}
				occ.Content = content
			}
			end, err := findEnd(path, lines, i+1)
			if err != nil {
				return nil, err
			}
			if end == len(lines) {
				_, _ = fmt.Fprintf(warn, "WARNING: %s:%d: @%s %s not closed before end of file\n",
					path, i+1, commandFor(occ.Role), occ.Name)
			}
			occ.End = end
			rec.Occurrences = append(rec.Occurrences, occ)
			reg.Add(occ)
			i = end + 1

		case directive.Replace, directive.Append:
			occ := &Occurrence{
				Role:   RoleReplace,
				Name:   d.Name,
				File:   path,
				Start:  i,
				Indent: directive.IndentWidth(lines[i]),
			}
			if d.Kind == directive.Append {
				occ.Role = RoleAppend
			}
			// No @endblock for these roles; the body run ends wherever the
			// extractor naturally stops.
			content, next, err := directive.Extract(lines, i+1, occ.Indent)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, next+1, err)
			}
			occ.Content = content
			occ.End = next
			rec.Occurrences = append(rec.Occurrences, occ)
			reg.Add(occ)
			i = next

		default:
			i++
		}
	}
	return rec, nil
}

// findEnd locates the next @endblock at or after start. Directive blocks do
// not nest, so the first terminator wins no matter what it was meant to
// close. Returns len(lines) when no terminator exists.
func findEnd(path string, lines []string, start int) (int, error) {
	for j := start; j < len(lines); j++ {
		d, err := directive.Recognize(lines[j])
		if err != nil {
			return 0, fmt.Errorf("%s:%d: %w", path, j+1, err)
		}
		if d.Kind == directive.End {
			return j, nil
		}
	}
	return len(lines), nil
}

func commandFor(role Role) string {
	if role == RoleEmpty {
		return "block"
	}
	return "block_" + role.String()
}

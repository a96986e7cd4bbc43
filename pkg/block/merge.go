package block

import (
	"io"
	"slices"
)

// Scan runs pass 1 over every input file in order, returning the scanned
// records and the populated registry. Pass 1 must finish for all files
// before any file is patched: a replace or append in a later file may target
// a block declared in an earlier one.
func Scan(files []SourceFile, warn io.Writer) ([]*FileRecord, *Registry, error) {
	reg := NewRegistry()
	records := make([]*FileRecord, 0, len(files))
	for _, file := range files {
		rec, err := ScanFile(file.Path, SplitLines(file.Text), reg, warn)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return records, reg, nil
}

// Merge is the whole engine: scan every file, resolve every block, patch
// every file. The input order is the discovery order and the only tie-break
// for replace/append precedence. Merge is a pure function of its input: it
// reads and writes nothing, and feeding its own output back in yields no
// further changes.
func Merge(files []SourceFile, warn io.Writer) ([]Result, error) {
	records, reg, err := Scan(files, warn)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		patched := Patch(rec, reg)
		res := Result{Path: rec.Path}
		if !slices.Equal(patched, rec.Lines) {
			res.Changed = true
			res.Text = JoinLines(patched)
		}
		results = append(results, res)
	}
	return results, nil
}

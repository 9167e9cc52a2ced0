package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// newReport returns an empty report. Files is non-nil so an empty run
// still serializes as "files":[].
func newReport() *Report {
	return &Report{
		FormatVersion: formatVersion,
		Files:         []OutputFile{},
	}
}

// Append adds file entries in arrival order. Entries for the same source
// file coming from different documents are kept separate.
func (r *Report) Append(files ...OutputFile) {
	r.Files = append(r.Files, files...)
}

// writeReport serializes the whole report as one line of JSON.
func writeReport(w io.Writer, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

package main

// formatVersion is the gcovr JSON format version written into every report.
const formatVersion = 0.1

// InputDocument is one decompressed *.gcov.json.gz document.
// Only the fields needed for conversion are decoded; the producer also
// writes functions, gcc_version and friends, which are ignored.
type InputDocument struct {
	Files []InputFile `json:"files"`
}

// InputFile holds the line records for one source file.
type InputFile struct {
	File  string      `json:"file"`
	Lines []InputLine `json:"lines"`
}

// InputLine is a single line number with its execution count.
type InputLine struct {
	LineNumber int64 `json:"line_number"`
	Count      int64 `json:"count"`
}

// Report is the aggregated gcovr document written to stdout.
type Report struct {
	FormatVersion float64      `json:"gcovr/format_version"`
	Files         []OutputFile `json:"files"`
}

// OutputFile is a gcovr file entry.
type OutputFile struct {
	File  string       `json:"file"`
	Lines []OutputLine `json:"lines"`
}

// OutputLine is a gcovr line entry. Field order matches the key order
// consumers of the format expect.
type OutputLine struct {
	Branches   []Branch `json:"branches"`
	Count      int64    `json:"count"`
	LineNumber int64    `json:"line_number"`
	NonCode    bool     `json:"gcovr/noncode"`
}

// Branch is reserved for branch coverage. The input format carries no
// branch data, so it is never populated.
type Branch struct{}

// Summary holds aggregated counts for the end-of-run log line.
type Summary struct {
	Documents    int
	Files        int
	Lines        int
	CoveredLines int
}

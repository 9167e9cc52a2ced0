package main

// convertFile maps an input file record to a gcovr file entry, keeping the
// line order.
func convertFile(in InputFile) OutputFile {
	out := OutputFile{
		File:  in.File,
		Lines: make([]OutputLine, 0, len(in.Lines)),
	}
	for _, line := range in.Lines {
		out.Lines = append(out.Lines, convertLine(line))
	}
	return out
}

// convertLine copies count and line number through. Every line is reported
// as code; the producer does not emit non-code lines.
func convertLine(in InputLine) OutputLine {
	return OutputLine{
		Branches:   []Branch{},
		Count:      in.Count,
		LineNumber: in.LineNumber,
		NonCode:    false,
	}
}

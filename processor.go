package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

const maxPathLineBytes = 1 << 20

// readInputPaths returns one path per line of r with trailing whitespace
// removed. Blank lines are kept as empty paths so they fail on open, the
// same as any other missing file.
func readInputPaths(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPathLineBytes)
	for scanner.Scan() {
		paths = append(paths, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("<stdin>", fmt.Errorf("reading input paths: %w", err))
	}
	return paths, nil
}

// loadDocument opens path, gunzips it and decodes the coverage document.
func loadDocument(path string) (*InputDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, ioError(path, fmt.Errorf("opening gzip stream: %w", err))
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, ioError(path, fmt.Errorf("decompressing: %w", err))
	}

	return decodeDocument(path, data)
}

// decodeDocument parses data as a single JSON value, checks it against the
// input schema and only then decodes it into the typed document.
func decodeDocument(path string, data []byte) (*InputDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, parseError(path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, parseError(path, errors.New("unexpected data after top-level JSON value"))
	}

	if err := inputSchema.Validate(raw); err != nil {
		return nil, schemaError(path, err)
	}

	var doc InputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// The schema accepts integral floats such as 5.0, int64 does not.
		return nil, schemaError(path, err)
	}
	return &doc, nil
}

// convert reads every input path from in and builds the aggregated report.
// Inputs are processed one at a time in the order given; the first failure
// aborts the run and no report is returned.
func convert(ctx context.Context, in io.Reader, log *zap.Logger) (*Report, error) {
	paths, err := readInputPaths(in)
	if err != nil {
		return nil, err
	}
	log.Debug("read input paths", zap.Int("count", len(paths)))

	report := newReport()
	var summary Summary

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := loadDocument(path)
		if err != nil {
			return nil, err
		}

		lines := 0
		for _, file := range doc.Files {
			out := convertFile(file)
			report.Append(out)

			lines += len(out.Lines)
			for _, l := range out.Lines {
				if l.Count > 0 {
					summary.CoveredLines++
				}
			}
		}
		summary.Documents++
		summary.Files += len(doc.Files)
		summary.Lines += lines

		log.Debug("converted document",
			zap.String("path", path),
			zap.Int("files", len(doc.Files)),
			zap.Int("lines", lines),
		)
	}

	log.Info("conversion finished",
		zap.Int("documents", summary.Documents),
		zap.Int("files", summary.Files),
		zap.Int("lines", summary.Lines),
		zap.Int("covered_lines", summary.CoveredLines),
	)
	return report, nil
}

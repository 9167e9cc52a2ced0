package main

import (
	"errors"
	"fmt"
)

// Error kinds for a failed input document. A *LoadError always matches
// exactly one of them with errors.Is.
var (
	ErrIO     = errors.New("i/o error")
	ErrParse  = errors.New("parse error")
	ErrSchema = errors.New("schema error")
)

// LoadError reports which input failed and why.
type LoadError struct {
	Kind error // ErrIO, ErrParse or ErrSchema
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(path string, err error) error {
	return &LoadError{Kind: ErrIO, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &LoadError{Kind: ErrParse, Path: path, Err: err}
}

func schemaError(path string, err error) error {
	return &LoadError{Kind: ErrSchema, Path: path, Err: err}
}

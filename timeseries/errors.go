package timeseries

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrFileNotFound = errors.New("log file not found")
	ErrParse        = errors.New("malformed log")
	ErrEmptySeries  = errors.New("empty series")
)

// FileError reports a log file that could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFileNotFound, e.Err}
}

// ParseError reports a malformed header or data row. Line is the 1-based
// line number in the source file, counting comment and blank lines.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d: ", e.Path, e.Line)
	switch {
	case e.Column != "" && e.Value != "":
		msg += fmt.Sprintf("column %q: invalid value %q", e.Column, e.Value)
	case e.Column != "":
		msg += fmt.Sprintf("column %q", e.Column)
	default:
		msg += "malformed row"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// EmptySeriesError reports a mean requested over zero samples, either
// because the log has no data rows or because the requested range selects
// nothing.
type EmptySeriesError struct {
	Path  string
	Range *Range
	Total int
}

func (e *EmptySeriesError) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("%s: range %s selects no samples out of %d", e.Path, e.Range, e.Total)
	}
	return fmt.Sprintf("%s: no samples", e.Path)
}

func (e *EmptySeriesError) Unwrap() error {
	return ErrEmptySeries
}

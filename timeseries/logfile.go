package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options holds options for log loading.
type Options struct {
	Column    string // Column holding the samples (default: "duration")
	Range     *Range // Inclusive sample range (nil: all samples)
	Delimiter rune   // Field delimiter (default: ',')
}

// DefaultOptions returns default options for log loading.
func DefaultOptions() *Options {
	return &Options{
		Column:    "duration",
		Delimiter: ',',
	}
}

// Record is one parsed data row.
type Record struct {
	Line   int
	Fields map[string]string
}

// LoadSeries loads a benchmark timing log into a Series.
func LoadSeries(path string, opts *Options) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	return LoadSeriesFromReader(file, path, opts)
}

// LoadSeriesFromReader loads a Series from an io.Reader. The name is used
// for the label and for error reporting.
func LoadSeriesFromReader(r io.Reader, name string, opts *Options) (*Series, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	column := opts.Column
	if column == "" {
		column = "duration"
	}

	records, _, err := ReadRecords(r, name, opts.Delimiter)
	if err != nil {
		return nil, err
	}

	samples := make([]int, 0, len(records))
	for _, rec := range records {
		raw, ok := rec.Fields[column]
		if !ok {
			return nil, &ParseError{Path: name, Line: rec.Line, Column: column, Err: errors.New("missing column")}
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ParseError{Path: name, Line: rec.Line, Column: column, Value: raw, Err: errNumber(err)}
		}
		samples = append(samples, v)
	}

	series, err := New(name, samples)
	if err != nil {
		return nil, err
	}
	if opts.Range == nil {
		return series, nil
	}
	return series.Slice(*opts.Range)
}

// ReadRecords reads a header-delimited log, skipping comment lines (first
// non-whitespace character '#') and blank lines anywhere in the input. The
// first remaining line is the header. It returns the data rows and the
// header column names.
func ReadRecords(r io.Reader, name string, delimiter rune) ([]Record, []string, error) {
	if delimiter == 0 {
		delimiter = ','
	}

	text, err := blankIgnoredLines(r)
	if err != nil {
		return nil, nil, &FileError{Path: name, Err: err}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, csvError(name, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, csvError(name, err)
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = row[i]
		}
		records = append(records, Record{Line: line, Fields: fields})
	}

	return records, header, nil
}

// blankIgnoredLines returns the input with comment and whitespace-only
// lines emptied, so csv skips them while line numbers stay intact.
func blankIgnoredLines(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: name, Line: pe.StartLine, Err: pe.Err}
	}
	return &FileError{Path: name, Err: err}
}

func errNumber(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

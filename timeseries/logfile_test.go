package timeseries

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSeriesFromReader(t *testing.T) {
	data := `# engine=rhino
name,iteration,duration
fib,0,412
fib,1,398
fib,2,401
fib,3,389`

	series, err := LoadSeriesFromReader(strings.NewReader(data), "rhino.txt", nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}

	expected := []int{412, 398, 401, 389}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d samples, got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Samples[i] != v {
			t.Errorf("Sample at index %d: expected %d, got %d", i, v, series.Samples[i])
		}
	}

	if series.Label != "rhino" {
		t.Errorf("Expected label 'rhino', got '%s'", series.Label)
	}
	if math.Abs(series.Mean-400) > 1e-10 {
		t.Errorf("Expected mean 400, got %f", series.Mean)
	}
}

func TestLoadSeriesCommentsAndBlankLines(t *testing.T) {
	data := "# header comment\n\nduration\n100\n200\n"

	series, err := LoadSeriesFromReader(strings.NewReader(data), "x.txt", nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}

	if series.Len() != 2 || series.Samples[0] != 100 || series.Samples[1] != 200 {
		t.Errorf("Expected samples [100 200], got %v", series.Samples)
	}
}

func TestLoadSeriesCommentsAnywhere(t *testing.T) {
	data := `
   # indented comment before header
id,duration

1,10
  # between rows
2,20

3,30
# trailing`

	series, err := LoadSeriesFromReader(strings.NewReader(data), "x.txt", nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}

	expected := []int{10, 20, 30}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d samples, got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Samples[i] != v {
			t.Errorf("Sample at index %d: expected %d, got %d", i, v, series.Samples[i])
		}
	}
}

func TestLoadSeriesSampleCountMatchesDataLines(t *testing.T) {
	var b strings.Builder
	b.WriteString("# generated\nrun,duration\n")
	dataLines := 0
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			b.WriteString("# checkpoint\n\n")
		}
		b.WriteString("a,")
		b.WriteString(strings.Repeat("1", 1+i%3))
		b.WriteString("\n")
		dataLines++
	}

	series, err := LoadSeriesFromReader(strings.NewReader(b.String()), "gen.txt", nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}
	if series.Len() != dataLines {
		t.Errorf("Expected %d samples, got %d", dataLines, series.Len())
	}
}

func TestLoadSeriesWithRange(t *testing.T) {
	data := "duration\n10\n20\n30\n40\n50\n"

	tests := []struct {
		name     string
		r        Range
		expected []int
		mean     float64
		start    int
	}{
		{"middle", Range{Start: 1, End: 3}, []int{20, 30, 40}, 30, 1},
		{"clamped end", Range{Start: 3, End: 100}, []int{40, 50}, 45, 3},
		{"clamped start", Range{Start: -4, End: 0}, []int{10}, 10, 0},
		{"all", Range{Start: 0, End: 4}, []int{10, 20, 30, 40, 50}, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Range = &tt.r

			series, err := LoadSeriesFromReader(strings.NewReader(data), "r.txt", opts)
			if err != nil {
				t.Fatalf("Failed to load log: %v", err)
			}
			if len(series.Samples) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, series.Samples)
			}
			for i, v := range tt.expected {
				if series.Samples[i] != v {
					t.Errorf("Sample at index %d: expected %d, got %d", i, v, series.Samples[i])
				}
			}
			if math.Abs(series.Mean-tt.mean) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.mean, series.Mean)
			}
			if series.Start != tt.start {
				t.Errorf("Expected start %d, got %d", tt.start, series.Start)
			}
			if series.Total != 5 {
				t.Errorf("Expected total 5, got %d", series.Total)
			}
		})
	}
}

func TestLoadSeriesEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
		r    *Range
	}{
		{"header only", "# c\nduration\n", nil},
		{"comments only", "# c\n\n# d\n", nil},
		{"nothing", "", nil},
		{"range past end", "duration\n1\n2\n3\n", &Range{Start: 10, End: 20}},
		{"inverted range", "duration\n1\n2\n3\n", &Range{Start: 2, End: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Range = tt.r

			series, err := LoadSeriesFromReader(strings.NewReader(tt.data), "e.txt", opts)
			if err == nil {
				t.Fatalf("Expected error, got series with mean %f", series.Mean)
			}
			if !errors.Is(err, ErrEmptySeries) {
				t.Errorf("Expected ErrEmptySeries, got %v", err)
			}
			var eerr *EmptySeriesError
			if !errors.As(err, &eerr) {
				t.Fatalf("Expected *EmptySeriesError, got %T", err)
			}
			if eerr.Path != "e.txt" {
				t.Errorf("Expected path 'e.txt', got '%s'", eerr.Path)
			}
		})
	}
}

func TestLoadSeriesParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		line   int
		column string
		value  string
	}{
		{
			"non-integer",
			"# c\nname,duration\nfib,12\nfib,abc\n",
			4, "duration", "abc",
		},
		{
			"float",
			"duration\n12.5\n",
			2, "duration", "12.5",
		},
		{
			"empty value",
			"name,duration\nfib,\n",
			2, "duration", "",
		},
		{
			"missing column",
			"name,iteration\nfib,1\n",
			2, "duration", "",
		},
		{
			"field count",
			"name,duration\nfib,1\n\n# c\nfib,2,3\n",
			5, "", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeriesFromReader(strings.NewReader(tt.data), "bad.txt", nil)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Expected ErrParse, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Expected line %d, got %d (%v)", tt.line, perr.Line, err)
			}
			if perr.Column != tt.column {
				t.Errorf("Expected column '%s', got '%s'", tt.column, perr.Column)
			}
			if perr.Value != tt.value {
				t.Errorf("Expected value '%s', got '%s'", tt.value, perr.Value)
			}
			if !strings.Contains(err.Error(), "bad.txt:") {
				t.Errorf("Expected file name in error, got %q", err.Error())
			}
		})
	}
}

func TestLoadSeriesCustomColumn(t *testing.T) {
	data := "name,duration,gc\nfib,100,3\nfib,110,5\n"

	opts := DefaultOptions()
	opts.Column = "gc"

	series, err := LoadSeriesFromReader(strings.NewReader(data), "x.txt", opts)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}
	if series.Samples[0] != 3 || series.Samples[1] != 5 {
		t.Errorf("Expected [3 5], got %v", series.Samples)
	}
}

func TestLoadSeriesPaddedFields(t *testing.T) {
	data := "name , duration\r\nfib, 100 \r\nfib,  200\r\n"

	series, err := LoadSeriesFromReader(strings.NewReader(data), "x.txt", nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}
	if series.Samples[0] != 100 || series.Samples[1] != 200 {
		t.Errorf("Expected [100 200], got %v", series.Samples)
	}
}

func TestLoadSeriesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rhino_2nd_run.txt")
	if err := os.WriteFile(path, []byte("# run 2\nduration\n300\n100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := LoadSeries(path, nil)
	if err != nil {
		t.Fatalf("Failed to load log: %v", err)
	}
	if first.Label != "rhino_2nd_run" {
		t.Errorf("Expected label 'rhino_2nd_run', got '%s'", first.Label)
	}
	if first.Path != path {
		t.Errorf("Expected path %s, got %s", path, first.Path)
	}

	// Loading the same file again yields an identical series.
	second, err := LoadSeries(path, nil)
	if err != nil {
		t.Fatalf("Failed to reload log: %v", err)
	}
	if first.Mean != second.Mean || first.Label != second.Label || first.Len() != second.Len() {
		t.Fatalf("Reload differs: %+v vs %+v", first, second)
	}
	for i := range first.Samples {
		if first.Samples[i] != second.Samples[i] {
			t.Errorf("Sample %d differs: %d vs %d", i, first.Samples[i], second.Samples[i])
		}
	}
}

func TestLoadSeriesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := LoadSeries(path, nil)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
	var ferr *FileError
	if !errors.As(err, &ferr) || ferr.Path != path {
		t.Errorf("Expected *FileError for %s, got %v", path, err)
	}
}

func TestReadRecords(t *testing.T) {
	data := "# c\nname,duration\n\nfib,12\n# c\nsum,7\n"

	records, header, err := ReadRecords(strings.NewReader(data), "x.txt", 0)
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}

	if len(header) != 2 || header[0] != "name" || header[1] != "duration" {
		t.Errorf("Unexpected header %v", header)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Line != 4 || records[1].Line != 6 {
		t.Errorf("Expected lines 4 and 6, got %d and %d", records[0].Line, records[1].Line)
	}
	if records[1].Fields["name"] != "sum" || records[1].Fields["duration"] != "7" {
		t.Errorf("Unexpected fields %v", records[1].Fields)
	}
}

func TestReadRecordsDelimiter(t *testing.T) {
	data := "name;duration\nfib;12\n"

	records, _, err := ReadRecords(strings.NewReader(data), "x.txt", ';')
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}
	if len(records) != 1 || records[0].Fields["duration"] != "12" {
		t.Errorf("Unexpected records %v", records)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Column != "duration" {
		t.Errorf("Expected default column 'duration', got '%s'", opts.Column)
	}
	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
	if opts.Range != nil {
		t.Errorf("Expected no default range, got %v", opts.Range)
	}
}

package timeseries

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive [Start, End] index pair over a sample sequence.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Clamp bounds the range to a sequence of length n. The returned half-open
// bounds satisfy lo >= hi when the range selects nothing.
func (r Range) Clamp(n int) (lo, hi int) {
	lo, hi = r.Start, r.End+1
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// ParseRange parses "start:end" or "start-end" into an inclusive Range.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":-")
	// A leading '-' is not a separator.
	if sep == 0 {
		return Range{}, fmt.Errorf("invalid range %q: start must not be negative", s)
	}
	if sep < 0 {
		return Range{}, fmt.Errorf("invalid range %q: expected start:end", s)
	}

	start, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start in %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end in %q: %w", s, err)
	}
	if end < start {
		return Range{}, fmt.Errorf("invalid range %q: end before start", s)
	}
	return Range{Start: start, End: end}, nil
}

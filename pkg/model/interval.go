package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a genomic interval with literal start and end coordinates.
//
// Coordinates are stored exactly as they appear in the input. For length math
// the end is treated as exclusive, so Span is end - start. Introns are
// reported in the annotation-facing form [prev.end+1, next.start], which is
// the convention the transcript graph format uses in its GTF output.
type Interval struct {
	Start uint64
	End   uint64
}

// Span returns the length of the interval
func (iv Interval) Span() uint64 {
	return iv.End - iv.Start
}

// String renders the interval as start-end
func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// ParseInterval parses a start-end coordinate pair
func ParseInterval(s string) (Interval, error) {
	dash := strings.IndexByte(s, '-')
	if dash <= 0 || dash == len(s)-1 {
		return Interval{}, fmt.Errorf("invalid exon coordinates %q: want start-end", s)
	}
	start, err := strconv.ParseUint(s[:dash], 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start coordinate %q: %w", s[:dash], err)
	}
	end, err := strconv.ParseUint(s[dash+1:], 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end coordinate %q: %w", s[dash+1:], err)
	}
	if end < start {
		return Interval{}, fmt.Errorf("invalid exon coordinates %q: end before start", s)
	}
	return Interval{Start: start, End: end}, nil
}

// Exons is an ordered set of exon intervals, in genomic order along the
// recorded strand. Exons must be sorted ascending by start and pairwise
// non-overlapping; ParseExons enforces both.
type Exons struct {
	Exons []Interval
}

// ParseExons parses a comma-separated list of start-end pairs
func ParseExons(s string) (Exons, error) {
	parts := strings.Split(s, ",")
	exons := make([]Interval, 0, len(parts))
	for _, part := range parts {
		iv, err := ParseInterval(part)
		if err != nil {
			return Exons{}, err
		}
		exons = append(exons, iv)
	}
	for i := 1; i < len(exons); i++ {
		if exons[i].Start < exons[i-1].Start {
			return Exons{}, fmt.Errorf("exons out of order: %s before %s", exons[i-1], exons[i])
		}
		if exons[i].Start <= exons[i-1].End {
			return Exons{}, fmt.Errorf("overlapping exons: %s and %s", exons[i-1], exons[i])
		}
	}
	return Exons{Exons: exons}, nil
}

// String renders the exons as comma-separated start-end pairs
func (e Exons) String() string {
	parts := make([]string, len(e.Exons))
	for i, iv := range e.Exons {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}

// Introns returns the gaps between consecutive exons. For exon i the intron
// is [exon[i].End+1, exon[i+1].Start].
func (e Exons) Introns() []Interval {
	if len(e.Exons) < 2 {
		return nil
	}
	introns := make([]Interval, 0, len(e.Exons)-1)
	for i := 0; i < len(e.Exons)-1; i++ {
		introns = append(introns, Interval{
			Start: e.Exons[i].End + 1,
			End:   e.Exons[i+1].Start,
		})
	}
	return introns
}

// Len returns the number of exons
func (e Exons) Len() int {
	return len(e.Exons)
}

// IsEmpty reports whether there are no exons
func (e Exons) IsEmpty() bool {
	return len(e.Exons) == 0
}

// Span returns the total number of bases covered by all exons
func (e Exons) Span() uint64 {
	var total uint64
	for _, iv := range e.Exons {
		total += iv.Span()
	}
	return total
}

// First returns the first exon. Panics if the set is empty.
func (e Exons) First() Interval {
	return e.Exons[0]
}

// Last returns the last exon. Panics if the set is empty.
func (e Exons) Last() Interval {
	return e.Exons[len(e.Exons)-1]
}

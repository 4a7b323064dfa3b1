package model

import (
	"fmt"
	"strings"
)

// ReadIdentity marks the structural role a supporting read plays for a node
type ReadIdentity uint8

const (
	// ReadSource seeds path traversal
	ReadSource ReadIdentity = iota
	// ReadIntermediate supports an internal segment
	ReadIntermediate
	// ReadSink terminates path traversal
	ReadSink
)

// String returns the two-letter code used in the text format
func (ri ReadIdentity) String() string {
	switch ri {
	case ReadSource:
		return "SO"
	case ReadIntermediate:
		return "IN"
	case ReadSink:
		return "SI"
	default:
		return "??"
	}
}

// ParseReadIdentity parses a two-letter identity code
func ParseReadIdentity(s string) (ReadIdentity, error) {
	switch s {
	case "SO":
		return ReadSource, nil
	case "IN":
		return ReadIntermediate, nil
	case "SI":
		return ReadSink, nil
	default:
		return 0, fmt.Errorf("invalid read identity %q", s)
	}
}

// ReadData pairs a supporting read id with its structural identity
type ReadData struct {
	ID       string
	Identity ReadIdentity
}

// String renders the read as read_id:identity
func (r ReadData) String() string {
	return r.ID + ":" + r.Identity.String()
}

// ParseRead parses a read_id:identity pair
func ParseRead(s string) (ReadData, error) {
	colon := strings.LastIndexByte(s, ':')
	if colon <= 0 || colon == len(s)-1 {
		return ReadData{}, fmt.Errorf("invalid read %q: want read_id:identity", s)
	}
	identity, err := ParseReadIdentity(s[colon+1:])
	if err != nil {
		return ReadData{}, err
	}
	return ReadData{ID: s[:colon], Identity: identity}, nil
}

// ParseReads parses a comma-separated list of read_id:identity pairs
func ParseReads(s string) ([]ReadData, error) {
	parts := strings.Split(s, ",")
	reads := make([]ReadData, 0, len(parts))
	for _, part := range parts {
		read, err := ParseRead(part)
		if err != nil {
			return nil, err
		}
		reads = append(reads, read)
	}
	return reads, nil
}

// FormatReads renders reads as a comma-separated list
func FormatReads(reads []ReadData) string {
	parts := make([]string, len(reads))
	for i, r := range reads {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Strand represents DNA strand orientation
type Strand uint8

const (
	Forward Strand = iota
	Reverse
)

// String returns the +/- strand symbol
func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// ParseStrand parses a +/- strand symbol
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("invalid strand %q", s)
	}
}

package locs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLocation is returned by Create for out-of-order or
	// nonpositive coordinates.
	ErrInvalidLocation = errors.New("locs: invalid location")
	// ErrNoExtension is returned by Extend when no start/stop pair
	// bounds the location inside its contig.
	ErrNoExtension = errors.New("locs: no valid extension")
)

// Extender supplies the contig DNA and the codon tests Extend needs.
// *genome.Genome satisfies it.
type Extender interface {
	// ContigSeq returns the forward DNA of a contig, or nil if the
	// contig is unknown.
	ContigSeq(id string) []byte
	// IsStart reports whether a codon, in reading orientation, is a
	// start codon for the genome's genetic code.
	IsStart(codon []byte) bool
	// IsStop reports whether a codon is a stop codon.
	IsStop(codon []byte) bool
}

// Location is a genomic interval on one strand of a contig. Coordinates
// are 1-based and inclusive, with Left <= Right regardless of strand.
type Location struct {
	Contig string
	Strand byte // '+' or '-'
	Left   int
	Right  int
}

// Create builds a location after validating the coordinates.
func Create(contig string, strand byte, left, right int) (Location, error) {
	if left < 1 || right < left {
		return Location{}, ErrInvalidLocation
	}
	if strand != '+' && strand != '-' {
		return Location{}, ErrInvalidLocation
	}
	return Location{Contig: contig, Strand: strand, Left: left, Right: right}, nil
}

// Must is Create for coordinates known to be valid.
func Must(contig string, strand byte, left, right int) Location {
	loc, err := Create(contig, strand, left, right)
	if err != nil {
		panic(fmt.Sprintf("locs: bad location %s%c %d..%d", contig, strand, left, right))
	}
	return loc
}

// Length returns the number of base pairs covered.
func (l Location) Length() int { return l.Right - l.Left + 1 }

// Begin returns the strand-relative first position: the left edge on the
// plus strand, the right edge on the minus strand.
func (l Location) Begin() int {
	if l.Strand == '-' {
		return l.Right
	}
	return l.Left
}

// End returns the strand-relative last position.
func (l Location) End() int {
	if l.Strand == '-' {
		return l.Left
	}
	return l.Right
}

// SetBegin moves the strand-relative begin edge, leaving the end fixed.
func (l *Location) SetBegin(begin int) {
	if l.Strand == '-' {
		l.Right = begin
	} else {
		l.Left = begin
	}
}

// Frame returns the reading lane of this location, derived from the
// strand and the position of the strand-relative begin edge mod 3.
func (l Location) Frame() Frame {
	switch l.Strand {
	case '+':
		return P0 + Frame(l.Left%3)
	case '-':
		return M0 + Frame(l.Right%3)
	}
	return FrameNone
}

// Distance returns the gap in base pairs between two locations on the
// same contig. The result is negative exactly when they overlap.
// Locations on different contigs never overlap; the gap returned for
// them is meaningless but positive.
func (l Location) Distance(other Location) int {
	if l.Contig != other.Contig {
		return int(^uint(0) >> 1)
	}
	left := l.Left
	if other.Left > left {
		left = other.Left
	}
	right := l.Right
	if other.Right < right {
		right = other.Right
	}
	return left - right - 1
}

// Contains reports whether this location covers the other completely.
func (l Location) Contains(other Location) bool {
	return l.Contig == other.Contig && l.Left <= other.Left && other.Right <= l.Right
}

func (l Location) String() string {
	return fmt.Sprintf("%s%c[%d..%d]", l.Contig, l.Strand, l.Left, l.Right)
}

// Extend pushes the location out to a full open reading frame: the
// strand-relative begin moves upstream to the nearest in-frame start
// codon, and the end moves downstream to the nearest in-frame stop
// codon, which is included. Extension fails if an in-frame stop is hit
// before a start, or if either scan runs off the contig.
func (l Location) Extend(g Extender) (Location, error) {
	seq := g.ContigSeq(l.Contig)
	if seq == nil {
		return Location{}, ErrNoExtension
	}
	if l.Strand == '-' {
		return l.extendMinus(g, seq)
	}
	return l.extendPlus(g, seq)
}

func (l Location) extendPlus(g Extender, seq []byte) (Location, error) {
	// Walk upstream codon by codon looking for a start.
	left := l.Left
	for {
		if left < 1 || left+2 > len(seq) {
			return Location{}, ErrNoExtension
		}
		codon := seq[left-1 : left+2]
		if g.IsStart(codon) {
			break
		}
		if g.IsStop(codon) {
			return Location{}, ErrNoExtension
		}
		left -= 3
	}
	// Walk downstream from the codon containing the right edge until a
	// stop codon is found; the stop is part of the final location.
	c := left + (l.Right-left)/3*3
	for {
		if c+2 > len(seq) {
			return Location{}, ErrNoExtension
		}
		if g.IsStop(seq[c-1 : c+2]) {
			return Location{Contig: l.Contig, Strand: '+', Left: left, Right: c + 2}, nil
		}
		c += 3
	}
}

func (l Location) extendMinus(g Extender, seq []byte) (Location, error) {
	// On the minus strand the begin edge is the right edge and upstream
	// means increasing coordinates.
	right := l.Right
	for {
		if right > len(seq) || right-3 < 0 {
			return Location{}, ErrNoExtension
		}
		codon := revComp3(seq[right-3 : right])
		if g.IsStart(codon) {
			break
		}
		if g.IsStop(codon) {
			return Location{}, ErrNoExtension
		}
		right += 3
	}
	// Scan toward the left edge of the contig for the stop.
	c := right - (right-l.Left)/3*3
	for {
		if c-3 < 0 {
			return Location{}, ErrNoExtension
		}
		if g.IsStop(revComp3(seq[c-3 : c])) {
			return Location{Contig: l.Contig, Strand: '-', Left: c - 2, Right: right}, nil
		}
		c -= 3
	}
}

var complement = [256]byte{
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a', 'u': 'a',
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
}

// revComp3 reverse-complements one codon.
func revComp3(codon []byte) []byte {
	out := make([]byte, 3)
	for i := 0; i < 3; i++ {
		c := complement[codon[2-i]]
		if c == 0 {
			c = 'n'
		}
		out[i] = c
	}
	return out
}

package kmers

import (
	"fmt"

	"github.com/mingzhi/kmeranno/genome"
)

// Type selects the contig kmer retrieval policy.
type Type int

const (
	// Strict keeps only kmers unique in the contigs.
	Strict Type = iota
	// Aggressive keeps every kmer with all of its locations.
	Aggressive
)

var typeNames = map[Type]string{Strict: "strict", Aggressive: "aggressive"}

func (t Type) String() string { return typeNames[t] }

// ParseType converts a policy name to a Type.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("kmers: unknown retrieval policy %q", s)
}

// Factory produces the contig kmer index under one retrieval policy.
type Factory interface {
	FindKmers(g *genome.Genome) ContigIndex
	K() int
}

// NewFactory builds a factory for the given policy and kmer length.
func NewFactory(t Type, k int) (Factory, error) {
	if k < 2 {
		return nil, fmt.Errorf("kmers: kmer length must be at least 2, got %d", k)
	}
	switch t {
	case Strict:
		return strictFactory{k: k}, nil
	case Aggressive:
		return aggressiveFactory{k: k}, nil
	}
	return nil, fmt.Errorf("kmers: unknown retrieval policy %d", t)
}

type strictFactory struct{ k int }

func (f strictFactory) K() int { return f.k }

func (f strictFactory) FindKmers(g *genome.Genome) ContigIndex {
	index := ContigKmers(g, f.k)
	for kmer, hits := range index {
		if len(hits) > 1 {
			delete(index, kmer)
		}
	}
	return index
}

type aggressiveFactory struct{ k int }

func (f aggressiveFactory) K() int { return f.k }

func (f aggressiveFactory) FindKmers(g *genome.Genome) ContigIndex {
	return ContigKmers(g, f.k)
}

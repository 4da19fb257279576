// Package kmers extracts protein kmer fingerprints: from the six-frame
// translation of a genome's contigs, and from the protein translations
// of a reference genome's pegs.
package kmers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mingzhi/kmeranno/genome"
	"github.com/mingzhi/kmeranno/locs"
)

// KmerReference is a protein kmer observed at a location. Identity is
// the kmer text alone; the location is carried data. For peg kmers the
// location's contig ID is really the feature ID and the coordinates are
// protein offsets scaled to base pairs.
type KmerReference struct {
	Kmer string
	Loc  locs.Location
}

// NewKmerReference builds a reference for a kmer whose DNA starts at
// the given 1-based position.
func NewKmerReference(kmer, seqID string, begin int, strand byte) KmerReference {
	k3 := len(kmer)*3 - 1
	return KmerReference{
		Kmer: kmer,
		Loc:  locs.Must(seqID, strand, begin, begin+k3),
	}
}

// ContigIndex maps kmer text to every contig location where the kmer's
// DNA occurs, across all six frames.
type ContigIndex map[string][]locs.Location

// ContigKmers scans both strands of every contig in three frames and
// indexes each clean kmer (no stop, no ambiguity) by location.
func ContigKmers(g *genome.Genome, k int) ContigIndex {
	index := make(ContigIndex, g.Length()*2)
	xl := g.Translator()
	for _, contig := range g.Contigs {
		fwd := g.ContigSeq(contig.ID)
		rev := genome.RevComp(append([]byte(nil), fwd...))
		scanStrand(index, xl, contig.ID, k, fwd, plusLeft{})
		scanStrand(index, xl, contig.ID, k, rev, newMinusLeft(contig.Length(), k))
	}
	return index
}

// leftCalc converts a protein offset and frame to the contig position
// of the kmer's left edge.
type leftCalc interface {
	calcLeft(pos, frame int) int
	strand() byte
}

type plusLeft struct{}

func (plusLeft) calcLeft(pos, frame int) int { return pos*3 + frame }
func (plusLeft) strand() byte                { return '+' }

// minusLeft maps offsets in the reverse-complemented sequence back to
// forward coordinates.
type minusLeft struct{ base int }

func newMinusLeft(contigLen, k int) minusLeft {
	return minusLeft{base: contigLen - k*3 + 2}
}

func (m minusLeft) calcLeft(pos, frame int) int { return m.base - (pos*3 + frame) }
func (m minusLeft) strand() byte                { return '-' }

func scanStrand(index ContigIndex, xl translator, contigID string, k int, sequence []byte, calc leftCalc) {
	for frame := 1; frame <= 3; frame++ {
		prot := xl.Translate(sequence, frame)
		end := len(prot) - k
		for i := 0; i < end; i++ {
			kmer := prot[i : i+k]
			if bytes.IndexByte(kmer, '*') >= 0 || bytes.IndexByte(kmer, 'X') >= 0 {
				continue
			}
			left := calc.calcLeft(i, frame)
			loc := locs.Must(contigID, calc.strand(), left, left+k*3-1)
			index[string(kmer)] = append(index[string(kmer)], loc)
		}
	}
}

type translator interface {
	Translate(seq []byte, frame int) []byte
}

// KmerCounts counts kmer occurrences keyed by kmer text, remembering
// the first location seen for each.
type KmerCounts struct {
	counts map[string]*kmerCount
}

type kmerCount struct {
	ref KmerReference
	n   int
}

// NewKmerCounts builds an empty count map.
func NewKmerCounts() *KmerCounts {
	return &KmerCounts{counts: make(map[string]*kmerCount)}
}

// Count records one occurrence of a kmer.
func (c *KmerCounts) Count(ref KmerReference) {
	if cur, ok := c.counts[ref.Kmer]; ok {
		cur.n++
		return
	}
	c.counts[ref.Kmer] = &kmerCount{ref: ref, n: 1}
}

// Size returns the number of distinct kmers counted.
func (c *KmerCounts) Size() int { return len(c.counts) }

// Singletons returns the kmers seen exactly once.
func (c *KmerCounts) Singletons() []KmerReference {
	var out []KmerReference
	for _, cur := range c.counts {
		if cur.n == 1 {
			out = append(out, cur.ref)
		}
	}
	return out
}

// CountPegKmers counts every clean kmer in the protein translations of
// the genome's pegs. Each kmer's location names the owning feature (the
// feature ID stands in for the contig ID) and the 1-based protein
// offset of the window.
func CountPegKmers(g *genome.Genome, k int) *KmerCounts {
	counts := NewKmerCounts()
	for _, feat := range g.Pegs() {
		prot := feat.Protein
		end := len(prot) - k
		for i := 0; i < end; i++ {
			kmer := prot[i : i+k]
			if strings.ContainsRune(kmer, 'X') {
				continue
			}
			counts.Count(NewKmerReference(kmer, feat.ID, i+1, '+'))
		}
	}
	return counts
}

func (r KmerReference) String() string {
	return fmt.Sprintf("%s@%v", r.Kmer, r.Loc)
}

// Package genome holds the genome model the annotator works on: contigs
// with DNA, features with protein translations, and the ranked list of
// close reference genomes. Genomes travel as GTO-style JSON documents.
package genome

import (
	"fmt"
	"sort"

	"github.com/mingzhi/kmeranno/locs"
	"github.com/mingzhi/kmeranno/proteins"
)

// Contig is one piece of assembled DNA. The sequence is stored
// lowercase on the forward strand.
type Contig struct {
	ID  string `json:"id"`
	Dna string `json:"dna"`
}

// Length returns the contig length in base pairs.
func (c *Contig) Length() int { return len(c.Dna) }

// Feature is an annotated region, normally a protein-encoding gene.
type Feature struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	Function string `json:"function,omitempty"`
	Contig   string `json:"contig"`
	Strand   string `json:"strand"`
	Left     int    `json:"left"`
	Right    int    `json:"right"`
	Protein  string `json:"protein,omitempty"`
}

// Loc returns the feature's location.
func (f *Feature) Loc() locs.Location {
	return locs.Location{Contig: f.Contig, Strand: f.Strand[0], Left: f.Left, Right: f.Right}
}

// ProteinLength returns the length of the protein translation in amino
// acids, 0 when there is none.
func (f *Feature) ProteinLength() int { return len(f.Protein) }

// CloseGenome names a reference genome judged similar to this one.
// Higher closeness means a better reference.
type CloseGenome struct {
	ID        string  `json:"genome_id"`
	Name      string  `json:"genome_name,omitempty"`
	Closeness float64 `json:"closeness"`
}

// Genome is a genome document. A new genome carries contigs and close
// genomes but no features; a reference genome loaded at protein detail
// carries features with translations and may omit contig DNA.
type Genome struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	GeneticCode  string        `json:"genetic_code"`
	Contigs      []*Contig     `json:"contigs,omitempty"`
	Features     []*Feature    `json:"features,omitempty"`
	CloseGenomes []CloseGenome `json:"close_genomes,omitempty"`

	contigSeq map[string][]byte
	contigs   map[string]*Contig
	features  map[string]*Feature
	xl        *proteins.DnaTranslator
}

// Prepare builds the lookup maps and the translator. It must be called
// after the exported fields are filled in; the readers in this package
// call it themselves.
func (g *Genome) Prepare() error {
	if g.GeneticCode == "" {
		g.GeneticCode = "11"
	}
	xl, err := proteins.New(g.GeneticCode)
	if err != nil {
		return fmt.Errorf("genome %s: %v", g.ID, err)
	}
	g.xl = xl
	g.contigs = make(map[string]*Contig, len(g.Contigs))
	g.contigSeq = make(map[string][]byte, len(g.Contigs))
	for _, c := range g.Contigs {
		g.contigs[c.ID] = c
		g.contigSeq[c.ID] = []byte(c.Dna)
	}
	g.features = make(map[string]*Feature, len(g.Features))
	for _, f := range g.Features {
		g.features[f.ID] = f
	}
	return nil
}

// Translator returns the genome's DNA translator.
func (g *Genome) Translator() *proteins.DnaTranslator { return g.xl }

// Contig returns a contig by ID, nil if absent.
func (g *Genome) Contig(id string) *Contig { return g.contigs[id] }

// ContigSeq returns the forward DNA of a contig, nil if absent.
func (g *Genome) ContigSeq(id string) []byte { return g.contigSeq[id] }

// IsStart reports whether a codon is a start under this genome's code.
func (g *Genome) IsStart(codon []byte) bool { return g.xl.IsStart(codon) }

// IsStop reports whether a codon is a stop under this genome's code.
func (g *Genome) IsStop(codon []byte) bool { return g.xl.IsStop(codon) }

// Dna returns the DNA covered by a location, in reading orientation:
// reverse-complemented for minus-strand locations.
func (g *Genome) Dna(loc locs.Location) []byte {
	seq := g.contigSeq[loc.Contig]
	if seq == nil || loc.Left < 1 || loc.Right > len(seq) {
		return nil
	}
	dna := make([]byte, loc.Length())
	copy(dna, seq[loc.Left-1:loc.Right])
	if loc.Strand == '-' {
		dna = RevComp(dna)
	}
	return dna
}

// Length returns the total contig length.
func (g *Genome) Length() int {
	n := 0
	for _, c := range g.Contigs {
		n += c.Length()
	}
	return n
}

// Feature returns a feature by ID, nil if absent.
func (g *Genome) Feature(id string) *Feature { return g.features[id] }

// AddFeature registers a new feature on the genome.
func (g *Genome) AddFeature(f *Feature) {
	g.Features = append(g.Features, f)
	g.features[f.ID] = f
}

// Pegs returns the features that carry a protein translation.
func (g *Genome) Pegs() []*Feature {
	var pegs []*Feature
	for _, f := range g.Features {
		if f.Protein != "" {
			pegs = append(pegs, f)
		}
	}
	return pegs
}

// RankedCloseGenomes returns the close genomes ordered best first.
func (g *Genome) RankedCloseGenomes() []CloseGenome {
	ranked := make([]CloseGenome, len(g.CloseGenomes))
	copy(ranked, g.CloseGenomes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Closeness > ranked[j].Closeness
	})
	return ranked
}

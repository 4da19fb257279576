package kmeranno

import (
	"errors"
	"fmt"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"github.com/mingzhi/kmeranno/genome"
	"github.com/mingzhi/kmeranno/kmers"
	"github.com/mingzhi/kmeranno/locs"
)

// ErrNoProposals is returned when a genome yields no viable peg
// proposals at all.
var ErrNoProposals = errors.New("kmeranno: no matching proteins found, unable to annotate genome")

// evidenceScale converts between amino-acid evidence counts and the
// base-pair length of a proposal. The user-facing strength threshold is
// divided by this before it meets the DNA-length ratio. Tunable, but
// there is no derivation behind the 3 beyond codon size.
const evidenceScale = 3

// Annotator projects annotations from close reference genomes onto new
// genomes. The zero value is not usable; call New.
type Annotator struct {
	K           int     // protein kmer length
	MinStrength float64 // minimum user-visible proposal strength, [0,1)
	MaxFuzz     float64 // maximum length-increase factor, >1
	MinEvidence int     // minimum evidence count for a proposal
	MaxGenomes  int     // reference genomes consulted per run
	Algorithm   kmers.Type

	Loader genome.Loader
}

// New returns an annotator with the stock parameters.
func New(loader genome.Loader) *Annotator {
	return &Annotator{
		K:           8,
		MinStrength: 0.20,
		MaxFuzz:     1.5,
		MinEvidence: 0,
		MaxGenomes:  10,
		Algorithm:   kmers.Aggressive,
		Loader:      loader,
	}
}

// Validate checks the configuration before any processing starts.
func (a *Annotator) Validate() error {
	if a.K < 2 {
		return fmt.Errorf("kmeranno: kmer length must be at least 2, got %d", a.K)
	}
	if a.MinStrength < 0 || a.MinStrength >= 1 {
		return fmt.Errorf("kmeranno: minimum strength must be in [0,1), got %g", a.MinStrength)
	}
	if a.MaxFuzz <= 1 {
		return fmt.Errorf("kmeranno: length fuzz factor must be greater than 1, got %g", a.MaxFuzz)
	}
	if a.MinEvidence < 0 {
		return fmt.Errorf("kmeranno: minimum evidence must not be negative, got %d", a.MinEvidence)
	}
	if a.MaxGenomes < 1 {
		return fmt.Errorf("kmeranno: need at least one close genome, got %d", a.MaxGenomes)
	}
	if a.Loader == nil {
		return errors.New("kmeranno: no reference genome loader")
	}
	return nil
}

// Annotate runs the full pipeline on one genome: index its contigs,
// match peg kmers from the close genomes, accumulate proposals, resolve
// overlaps, and materialize the surviving calls as features. The
// genome is modified in place. Stats are returned even on failure.
func (a *Annotator) Annotate(g *genome.Genome) (*Stats, error) {
	stats := new(Stats)
	if err := a.Validate(); err != nil {
		return stats, err
	}
	factory, err := kmers.NewFactory(a.Algorithm, a.K)
	if err != nil {
		return stats, err
	}
	if g.Translator() == nil {
		if err := g.Prepare(); err != nil {
			return stats, err
		}
	}
	Info.Printf("annotating genome %s: %s", g.ID, g.Name)

	// The evidence is protein kmer hits against a DNA-length proposal,
	// so the working strength threshold is scaled down.
	realStrength := a.MinStrength / evidenceScale
	proposals := locs.NewPegProposalList(g, realStrength, a.MinEvidence)

	contigKmers := factory.FindKmers(g)
	stats.KmersIndexed = len(contigKmers)
	Info.Printf("%d kmers found in genome %s (%s policy)", len(contigKmers), g.ID, a.Algorithm)

	framer := locs.NewFramedLocationLists()
	for _, cg := range g.RankedCloseGenomes() {
		if stats.GenomesUsed >= a.MaxGenomes {
			break
		}
		ref, err := a.Loader.Load(cg.ID)
		if err != nil {
			Warn.Printf("close genome %s not available, skipping: %v", cg.ID, err)
			stats.GenomesMissing++
			continue
		}
		stats.GenomesUsed++
		a.matchReference(g, ref, contigKmers, framer, proposals, stats)
		framer.Clear()
	}
	Info.Printf("genome %s: %d proposals made, %d merged, %d rejected, %d too weak, %d too small, %d kept",
		g.ID, proposals.MadeCount(), proposals.MergeCount(), proposals.RejectedCount(),
		proposals.WeakCount(), proposals.SmallCount(), proposals.ProposalCount())

	stats.Made = proposals.MadeCount()
	stats.Rejected = proposals.RejectedCount()
	stats.Weak = proposals.WeakCount()
	stats.Small = proposals.SmallCount()
	stats.Merged = proposals.MergeCount()
	stats.Kept = proposals.ProposalCount()

	if err := a.finalize(g, proposals, stats); err != nil {
		return stats, err
	}
	Info.Printf("genome %s: %s", g.ID, stats)
	return stats, nil
}

// matchReference matches one reference genome's unique peg kmers
// against the contig index and proposes pegs for every dense run of
// hits.
func (a *Annotator) matchReference(g *genome.Genome, ref *genome.Genome,
	contigKmers kmers.ContigIndex, framer *locs.FramedLocationLists,
	proposals *locs.PegProposalList, stats *Stats) {

	pegKmers := kmers.CountPegKmers(ref, a.K)
	singletons := pegKmers.Singletons()
	Info.Printf("reference %s: %d protein kmers, %d unique", ref.ID, pegKmers.Size(), len(singletons))

	// The peg kmer's "contig ID" is the owning feature ID, so each
	// contig hit is connected to that feature.
	for _, pk := range singletons {
		for _, hit := range contigKmers[pk.Kmer] {
			framer.Connect(pk.Loc.Contig, hit)
		}
	}
	Info.Printf("reference %s: %d matching kmers", ref.ID, framer.Size())

	realStrength := a.MinStrength / evidenceScale
	for _, report := range framer.Reports() {
		feat := ref.Feature(report.TargetID)
		if feat == nil {
			continue
		}
		// Protein length scaled to base pairs, since all the match
		// locations are DNA locations.
		pegLen := feat.ProteinLength() * 3
		maxLen := int(float64(pegLen)*a.MaxFuzz + 1)
		minKmers := int(float64(pegLen) * realStrength)
		list := report.List
		if list.Len() < minKmers {
			stats.LowKmerTargets++
			continue
		}
		// Each list position can anchor a proposal; count the hits
		// whose right edge stays inside the length window.
		n := list.Len() - minKmers
		for i := 0; i <= n; i++ {
			first := list.Get(i)
			evidence := 1
			maxEdge := first.Left + maxLen
			bestEdge := first.Right
			for _, loc := range list.ContigRange(i) {
				if loc.Right < maxEdge {
					evidence++
					if loc.Right > bestEdge {
						bestEdge = loc.Right
					}
				}
			}
			whole := locs.Location{Contig: first.Contig, Strand: first.Strand, Left: first.Left, Right: bestEdge}
			proposals.Propose(whole, feat.Function, evidence)
		}
	}
}

// finalize walks the proposals in contig order, discards the weaker of
// each overlapping pair (usually the same locus called in different
// frames), and materializes the survivors as features.
func (a *Annotator) finalize(g *genome.Genome, proposals *locs.PegProposalList, stats *Stats) error {
	list := proposals.Proposals()
	if len(list) == 0 {
		return ErrNoProposals
	}
	mv := meanvar.New()
	reserve := list[0]
	for _, current := range list[1:] {
		if reserve.Loc.Distance(current.Loc) < 0 {
			stats.Overlaps++
			if current.BetterThan(reserve) {
				reserve = current
			}
		} else {
			a.makeFeature(g, reserve, stats, mv)
			reserve = current
		}
	}
	a.makeFeature(g, reserve, stats, mv)
	stats.MeanStrength = mv.Mean.GetResult()
	stats.VarStrength = mv.Var.GetResult()
	return nil
}

// makeFeature turns a winning proposal into a feature on the genome.
func (a *Annotator) makeFeature(g *genome.Genome, p *locs.PegProposal, stats *Stats, mv *meanvar.MeanVar) {
	stats.Pegs++
	fid := fmt.Sprintf("fig|%s.peg.%d", g.ID, stats.Pegs)
	dna := g.Dna(p.Loc)
	// Trim the stop codon off the translation.
	prot := g.Translator().PegTranslate(dna[:len(dna)-3])
	g.AddFeature(&genome.Feature{
		ID:       fid,
		Type:     "CDS",
		Function: p.Function,
		Contig:   p.Loc.Contig,
		Strand:   string(p.Loc.Strand),
		Left:     p.Loc.Left,
		Right:    p.Loc.Right,
		Protein:  string(prot),
	})
	mv.Increment(p.Strength * evidenceScale)
}

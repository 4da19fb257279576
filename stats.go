package kmeranno

import "fmt"

// Stats accumulates the counted outcomes of one annotation run. In
// batch mode per-run stats are folded into a shared total with Add.
type Stats struct {
	GenomesUsed    int // reference genomes actually consulted
	GenomesMissing int // reference genomes the loader could not find
	KmersIndexed   int // distinct kmers in the new genome's contig index
	LowKmerTargets int // (frame, peg) pairs skipped for too few matches

	Made     int // proposals offered
	Rejected int // locations that could not be extended
	Weak     int // proposals below the strength floor
	Small    int // proposals with too little evidence
	Merged   int // proposals that replaced a weaker call
	Kept     int // live proposals entering overlap resolution

	Overlaps int // proposals discarded in overlap resolution
	Pegs     int // features materialized

	MeanStrength float64 // mean strength of materialized pegs
	VarStrength  float64 // variance of that strength
}

// Add folds another run's counters into this one. The strength moments
// are not combined; they stay per-run.
func (s *Stats) Add(o *Stats) {
	s.GenomesUsed += o.GenomesUsed
	s.GenomesMissing += o.GenomesMissing
	s.KmersIndexed += o.KmersIndexed
	s.LowKmerTargets += o.LowKmerTargets
	s.Made += o.Made
	s.Rejected += o.Rejected
	s.Weak += o.Weak
	s.Small += o.Small
	s.Merged += o.Merged
	s.Kept += o.Kept
	s.Overlaps += o.Overlaps
	s.Pegs += o.Pegs
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d proposals made, %d merged, %d rejected, %d too weak, %d too small, %d kept; %d overlaps discarded, %d pegs created",
		s.Made, s.Merged, s.Rejected, s.Weak, s.Small, s.Kept, s.Overlaps, s.Pegs)
}

package locs

import "fmt"

// PegProposal is a candidate protein-coding gene call: a location
// already extended to a start and stop, the proposed functional
// assignment, and the strength of the evidence behind it.
type PegProposal struct {
	Loc      Location
	Function string
	Strength float64
}

// SameOrf reports whether two proposals call the same open reading
// frame: same contig, same strand-relative end, same strand.
func (p *PegProposal) SameOrf(other *PegProposal) bool {
	return p.Loc.Contig == other.Loc.Contig &&
		p.Loc.End() == other.Loc.End() &&
		p.Loc.Strand == other.Loc.Strand
}

// BetterThan reports whether this proposal beats another: higher
// strength wins, and on equal strength the longer call wins. A tie on
// both leaves the older proposal in place.
func (p *PegProposal) BetterThan(other *PegProposal) bool {
	if p.Strength != other.Strength {
		return p.Strength > other.Strength
	}
	return p.Loc.Length() > other.Loc.Length()
}

// merge overwrites this proposal with a better call for the same ORF.
// The end edge is shared, so only the begin moves.
func (p *PegProposal) merge(other *PegProposal) {
	p.Function = other.Function
	p.Loc.SetBegin(other.Loc.Begin())
	p.Strength = other.Strength
}

// less orders proposals for contig-order iteration: by contig, then
// left edge, then length (shorter first).
func (p *PegProposal) less(other *PegProposal) bool {
	if p.Loc.Contig != other.Loc.Contig {
		return p.Loc.Contig < other.Loc.Contig
	}
	if p.Loc.Left != other.Loc.Left {
		return p.Loc.Left < other.Loc.Left
	}
	return p.Loc.Length() < other.Loc.Length()
}

func (p *PegProposal) String() string {
	return fmt.Sprintf("%v %q (%.4f)", p.Loc, p.Function, p.Strength)
}

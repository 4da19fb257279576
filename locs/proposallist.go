package locs

import "sort"

type orfKey struct {
	contig string
	end    int
	strand byte
}

// PegProposalList accumulates peg proposals for one genome, keeping at
// most one proposal per ORF and counting every rejection outcome. It is
// owned by a single annotation run and consumed once, in contig order.
type PegProposalList struct {
	genome      Extender
	minStrength float64
	minEvidence int

	proposals map[orfKey]*PegProposal

	made     int
	rejected int
	weak     int
	small    int
	merged   int
}

// NewPegProposalList creates an empty proposal list. minStrength is the
// lowest acceptable evidence/length ratio; minEvidence the lowest
// acceptable raw evidence count.
func NewPegProposalList(g Extender, minStrength float64, minEvidence int) *PegProposalList {
	return &PegProposalList{
		genome:      g,
		minStrength: minStrength,
		minEvidence: minEvidence,
		proposals:   make(map[orfKey]*PegProposal),
	}
}

// Propose offers a candidate call. The location is extended to a full
// ORF first; failures and weak or undersized evidence are counted, not
// errors. When a proposal for the same ORF already exists the stronger
// one wins, with ties going to the longer call and then to the earlier
// arrival. The accepted (possibly merged-into) proposal is returned,
// or nil if the candidate was discarded.
func (pl *PegProposalList) Propose(loc Location, function string, evidence int) *PegProposal {
	pl.made++
	extended, err := loc.Extend(pl.genome)
	if err != nil {
		pl.rejected++
		return nil
	}
	strength := float64(evidence) / float64(extended.Length())
	if strength < pl.minStrength {
		pl.weak++
		return nil
	}
	if evidence < pl.minEvidence {
		pl.small++
		return nil
	}
	candidate := &PegProposal{Loc: extended, Function: function, Strength: strength}
	key := orfKey{contig: extended.Contig, end: extended.End(), strand: extended.Strand}
	old, ok := pl.proposals[key]
	if !ok {
		pl.proposals[key] = candidate
		return candidate
	}
	if candidate.BetterThan(old) {
		old.merge(candidate)
		pl.merged++
		return old
	}
	return nil
}

// Proposals returns the accepted proposals in contig order.
func (pl *PegProposalList) Proposals() []*PegProposal {
	out := make([]*PegProposal, 0, len(pl.proposals))
	for _, p := range pl.proposals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// MadeCount returns the number of proposals offered.
func (pl *PegProposalList) MadeCount() int { return pl.made }

// RejectedCount returns the number of proposals whose location could
// not be extended to a start/stop pair.
func (pl *PegProposalList) RejectedCount() int { return pl.rejected }

// WeakCount returns the number of proposals below the strength floor.
func (pl *PegProposalList) WeakCount() int { return pl.weak }

// SmallCount returns the number of proposals with too little evidence.
func (pl *PegProposalList) SmallCount() int { return pl.small }

// MergeCount returns the number of proposals that replaced a weaker
// call for the same ORF.
func (pl *PegProposalList) MergeCount() int { return pl.merged }

// ProposalCount returns the number of live proposals.
func (pl *PegProposalList) ProposalCount() int { return len(pl.proposals) }

// Package proteins converts DNA to protein under an NCBI genetic code.
package proteins

import (
	"fmt"

	"github.com/mingzhi/ncbiftp/taxonomy"
)

// Start-codon sets by genetic code ID. The NCBI tables carried by the
// taxonomy package expose the codon-to-amino-acid mapping but not the
// alternative starts, so those are kept here. Code 11 (bacteria) uses
// the classic SEED set.
var startCodons = map[string][]string{
	"1":  {"ATG"},
	"4":  {"ATG", "GTG", "TTG"},
	"11": {"ATG", "TTG", "CTG"},
}

var defaultStarts = []string{"ATG", "GTG", "TTG"}

// DnaTranslator translates DNA to protein for one genetic code. Stop
// codons translate to '*' and unrecognized or ambiguous codons to 'X'.
// DNA case does not matter.
type DnaTranslator struct {
	code   *taxonomy.GeneticCode
	starts map[string]bool
}

// New builds a translator for the genetic code with the given NCBI ID
// (for example "11" for bacteria and archaea).
func New(codeID string) (*DnaTranslator, error) {
	gc, ok := taxonomy.GeneticCodes()[codeID]
	if !ok {
		return nil, fmt.Errorf("proteins: unknown genetic code %q", codeID)
	}
	starts, ok := startCodons[codeID]
	if !ok {
		starts = defaultStarts
	}
	t := &DnaTranslator{code: gc, starts: make(map[string]bool, len(starts))}
	for _, s := range starts {
		t.starts[s] = true
	}
	return t, nil
}

// Code returns the NCBI ID of the underlying genetic code.
func (t *DnaTranslator) Code() string { return t.code.Id }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func (t *DnaTranslator) key(codon []byte) string {
	var buf [3]byte
	for i := 0; i < 3; i++ {
		buf[i] = upper(codon[i])
	}
	return string(buf[:])
}

// Aa returns the amino acid for one codon, 'X' if the codon is not in
// the table (ambiguity characters end up here).
func (t *DnaTranslator) Aa(codon []byte) byte {
	aa, ok := t.code.Table[t.key(codon)]
	if !ok {
		return 'X'
	}
	return aa
}

// IsStart reports whether the codon can start a peg.
func (t *DnaTranslator) IsStart(codon []byte) bool {
	return t.starts[t.key(codon)]
}

// IsStop reports whether the codon ends translation.
func (t *DnaTranslator) IsStop(codon []byte) bool {
	return t.Aa(codon) == '*'
}

// Translate converts the sequence to protein starting at the given
// frame offset (1, 2, or 3). Trailing bases short of a codon are
// dropped.
func (t *DnaTranslator) Translate(seq []byte, frame int) []byte {
	if frame < 1 || frame > 3 {
		return nil
	}
	out := make([]byte, 0, (len(seq)-frame+1)/3)
	for i := frame - 1; i+3 <= len(seq); i += 3 {
		out = append(out, t.Aa(seq[i:i+3]))
	}
	return out
}

// PegTranslate translates a peg's DNA: the initial codon becomes 'M'
// when it is a start codon, the rest translate normally. The caller is
// expected to have trimmed the stop codon.
func (t *DnaTranslator) PegTranslate(seq []byte) []byte {
	prot := t.Translate(seq, 1)
	if len(prot) > 0 && t.IsStart(seq[0:3]) {
		prot[0] = 'M'
	}
	return prot
}

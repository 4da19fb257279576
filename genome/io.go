package genome

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/mingzhi/biogo/seq"
)

// Read decodes a genome document and prepares it for use.
func Read(r io.Reader) (*Genome, error) {
	g := new(Genome)
	dc := json.NewDecoder(r)
	if err := dc.Decode(g); err != nil {
		return nil, err
	}
	if err := g.Prepare(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFile reads a genome document from a file.
func ReadFile(fileName string) (*Genome, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write encodes the genome as an indented JSON document.
func (g *Genome) Write(w io.Writer) error {
	ec := json.NewEncoder(w)
	ec.SetIndent("", "  ")
	return ec.Encode(g)
}

// WriteFile writes the genome document to a file.
func (g *Genome) WriteFile(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Write(f)
}

// ReadContigs reads contigs from a FASTA file. Sequences are lowercased.
func ReadContigs(fileName string) ([]*Contig, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := seq.NewFastaReader(f)
	seqs, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	contigs := make([]*Contig, 0, len(seqs))
	for _, s := range seqs {
		contigs = append(contigs, &Contig{
			ID:  s.Id,
			Dna: strings.ToLower(string(s.Seq)),
		})
	}
	return contigs, nil
}

// RevComp reverse-complements a DNA sequence in place and returns it.
func RevComp(dna []byte) []byte {
	return seq.Complement(seq.Reverse(dna))
}

package main

import (
	"strconv"
	"strings"

	"github.com/mingzhi/kmeranno/genome"
)

type cmdImport struct {
	fnaFile   string
	outFile   string
	id        string
	name      string
	code      string
	closeFile string
}

func (c *cmdImport) run() {
	contigs, err := genome.ReadContigs(c.fnaFile)
	raiseError(err)

	g := &genome.Genome{
		ID:          c.id,
		Name:        c.name,
		GeneticCode: c.code,
		Contigs:     contigs,
	}
	if c.closeFile != "" {
		g.CloseGenomes = readCloseGenomes(c.closeFile)
	}
	raiseError(g.Prepare())
	raiseError(g.WriteFile(c.outFile))
}

// readCloseGenomes reads a tab-separated close genome list: genome ID,
// closeness score, and optionally a name.
func readCloseGenomes(fileName string) []genome.CloseGenome {
	var closeGenomes []genome.CloseGenome
	for _, line := range readLines(fileName) {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		closeness, err := strconv.ParseFloat(fields[1], 64)
		raiseError(err)
		cg := genome.CloseGenome{ID: fields[0], Closeness: closeness}
		if len(fields) > 2 {
			cg.Name = fields[2]
		}
		closeGenomes = append(closeGenomes, cg)
	}
	return closeGenomes
}

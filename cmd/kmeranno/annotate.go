package main

import (
	"os"

	"github.com/mingzhi/kmeranno"
	"github.com/mingzhi/kmeranno/genome"
)

type cmdAnnotate struct {
	refDir    string
	inFile    string
	outFile   string
	cacheFile string

	anno *kmeranno.Annotator
}

func (c *cmdAnnotate) run() {
	loader, closer := openLoader(c.refDir, c.cacheFile)
	if closer != nil {
		defer closer()
	}
	c.anno.Loader = loader

	var g *genome.Genome
	var err error
	if c.inFile != "" {
		g, err = genome.ReadFile(c.inFile)
	} else {
		g, err = genome.Read(os.Stdin)
	}
	raiseError(err)

	_, err = c.anno.Annotate(g)
	raiseError(err)

	if c.outFile != "" {
		raiseError(g.WriteFile(c.outFile))
	} else {
		raiseError(g.Write(os.Stdout))
	}
}

// openLoader builds the reference loader, wrapping it with the bolt
// cache when requested.
func openLoader(refDir, cacheFile string) (genome.Loader, func()) {
	var loader genome.Loader = genome.DirLoader{Base: refDir}
	if cacheFile == "" {
		return loader, nil
	}
	cached, err := genome.NewCacheLoader(cacheFile, loader)
	raiseError(err)
	return cached, func() { cached.Close() }
}

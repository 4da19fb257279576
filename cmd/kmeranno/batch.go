package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/mingzhi/kmeranno"
	"github.com/mingzhi/kmeranno/genome"
	"gopkg.in/cheggaaa/pb.v1"
)

type cmdBatch struct {
	refDir    string
	listFile  string
	outDir    string
	cacheFile string
	ncpu      int
	progress  bool

	anno *kmeranno.Annotator
}

func (c *cmdBatch) run() {
	loader, closer := openLoader(c.refDir, c.cacheFile)
	if closer != nil {
		defer closer()
	}
	c.anno.Loader = loader

	files := readLines(c.listFile)
	raiseError(os.MkdirAll(c.outDir, 0755))

	genomes := make(chan *genome.Genome)
	go func() {
		defer close(genomes)
		for _, fileName := range files {
			g, err := genome.ReadFile(fileName)
			if err != nil {
				kmeranno.Warn.Printf("skipping %s: %v", fileName, err)
				continue
			}
			genomes <- g
		}
	}()

	var pbar *pb.ProgressBar
	if c.progress {
		pbar = pb.StartNew(len(files))
		defer pbar.Finish()
	}

	results := make(chan kmeranno.BatchResult)
	done := make(chan *kmeranno.Stats)
	go func() {
		done <- c.anno.AnnotateBatch(genomes, c.ncpu, results)
	}()

	failed := 0
	for r := range results {
		if r.Err != nil {
			failed++
		} else {
			outName := filepath.Join(c.outDir, r.Genome.ID+".json")
			if err := r.Genome.WriteFile(outName); err != nil {
				kmeranno.Warn.Printf("writing %s: %v", outName, err)
			}
			kmeranno.Info.Printf("genome %s: mean peg strength %.4f", r.Genome.ID, r.Stats.MeanStrength)
		}
		if c.progress {
			pbar.Increment()
		}
	}
	total := <-done
	kmeranno.Info.Printf("batch complete, %d genomes failed; totals: %s", failed, total)
}

func readLines(fileName string) []string {
	f, err := os.Open(fileName)
	raiseError(err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	raiseError(scanner.Err())
	return lines
}

package main

import (
	"log"
	"os"

	"github.com/mingzhi/kmeranno"
	"github.com/mingzhi/kmeranno/kmers"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app   = kingpin.New("kmeranno", "Project protein annotations from close reference genomes onto a new genome.")
	debug = app.Flag("debug", "enable debug mode.").Bool()

	// Annotation parameters, shared by annotate and batch.
	minStrength = app.Flag("min-strength", "minimum acceptable proposal strength (0 to 1).").Default("0.20").Float64()
	maxFuzz     = app.Flag("fuzz", "maximum length increase factor for proteins (>1).").Default("1.5").Float64()
	kmerLen     = app.Flag("kmer", "protein kmer length.").Short('K').Default("8").Int()
	maxGenomes  = app.Flag("num-genomes", "maximum number of close genomes to scan.").Short('n').Default("10").Int()
	minEvidence = app.Flag("min-evidence", "minimum evidence count for a proposal.").Default("0").Int()
	algorithm   = app.Flag("algorithm", "contig kmer retrieval policy (strict or aggressive).").Default("aggressive").String()
	configFile  = app.Flag("config", "YAML configure file; its settings override the parameter flags.").String()

	annotateApp   = app.Command("annotate", "annotate one genome.")
	annotateRef   = annotateApp.Arg("ref_dir", "reference genome directory.").Required().String()
	annotateIn    = annotateApp.Flag("input", "input genome file (default STDIN).").Short('i').String()
	annotateOut   = annotateApp.Flag("output", "output genome file (default STDOUT).").Short('o').String()
	annotateCache = annotateApp.Flag("cache", "bolt cache file for reference genomes.").String()

	batchApp      = app.Command("batch", "annotate every genome in a list file.")
	batchRef      = batchApp.Arg("ref_dir", "reference genome directory.").Required().String()
	batchList     = batchApp.Arg("list_file", "file listing genome document paths, one per line.").Required().String()
	batchOutDir   = batchApp.Arg("out_dir", "directory for annotated genome documents.").Required().String()
	batchCache    = batchApp.Flag("cache", "bolt cache file for reference genomes.").String()
	batchNcpu     = batchApp.Flag("ncpu", "number of CPUs for using.").Default("0").Int()
	batchProgress = batchApp.Flag("progress", "show progress.").Bool()

	importApp   = app.Command("import", "build a skeleton genome document from a FASTA file.")
	importFna   = importApp.Arg("fna_file", "contig FASTA file.").Required().String()
	importOut   = importApp.Arg("out_file", "output genome document.").Required().String()
	importID    = importApp.Flag("id", "genome ID.").Required().String()
	importName  = importApp.Flag("name", "genome name.").String()
	importCode  = importApp.Flag("code", "NCBI genetic code ID.").Default("11").String()
	importClose = importApp.Flag("close", "close genome list file (genome_id TAB closeness TAB name).").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	registerLoggers()

	anno := newAnnotator()
	switch command {
	case annotateApp.FullCommand():
		c := cmdAnnotate{
			refDir:    *annotateRef,
			inFile:    *annotateIn,
			outFile:   *annotateOut,
			cacheFile: *annotateCache,
			anno:      anno,
		}
		c.run()
	case batchApp.FullCommand():
		c := cmdBatch{
			refDir:    *batchRef,
			listFile:  *batchList,
			outDir:    *batchOutDir,
			cacheFile: *batchCache,
			ncpu:      *batchNcpu,
			progress:  *batchProgress,
			anno:      anno,
		}
		c.run()
	case importApp.FullCommand():
		c := cmdImport{
			fnaFile:   *importFna,
			outFile:   *importOut,
			id:        *importID,
			name:      *importName,
			code:      *importCode,
			closeFile: *importClose,
		}
		c.run()
	}
}

func registerLoggers() {
	kmeranno.Info = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	kmeranno.Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
}

// newAnnotator builds the annotator from the command line; a config
// file, when given, overrides the flags.
func newAnnotator() *kmeranno.Annotator {
	anno := kmeranno.New(nil)
	anno.MinStrength = *minStrength
	anno.MaxFuzz = *maxFuzz
	anno.K = *kmerLen
	anno.MaxGenomes = *maxGenomes
	anno.MinEvidence = *minEvidence
	algo, err := kmers.ParseType(*algorithm)
	raiseError(err)
	anno.Algorithm = algo
	if *configFile != "" {
		applyConfig(anno, *configFile)
	}
	raiseError(anno.Validate())
	return anno
}

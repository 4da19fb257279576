package main

import (
	"path/filepath"

	"github.com/jacobstr/confer"
	"github.com/mingzhi/kmeranno"
	"github.com/mingzhi/kmeranno/kmers"
)

// applyConfig overrides annotation parameters from a YAML configure
// file. Keys live under "anno":
//
//	anno:
//	  min_strength: 0.5
//	  fuzz: 2.0
//	  kmer: 10
//	  num_genomes: 5
//	  min_evidence: 10
//	  algorithm: strict
func applyConfig(anno *kmeranno.Annotator, fileName string) {
	config := confer.NewConfig()
	config.SetRootPath(filepath.Dir(fileName))
	raiseError(config.ReadPaths(filepath.Base(fileName)))
	config.AutomaticEnv()

	if v := config.GetFloat64("anno.min_strength"); v != 0 {
		anno.MinStrength = v
	}
	if v := config.GetFloat64("anno.fuzz"); v != 0 {
		anno.MaxFuzz = v
	}
	if v := config.GetInt("anno.kmer"); v != 0 {
		anno.K = v
	}
	if v := config.GetInt("anno.num_genomes"); v != 0 {
		anno.MaxGenomes = v
	}
	if v := config.GetInt("anno.min_evidence"); v != 0 {
		anno.MinEvidence = v
	}
	if s := config.GetString("anno.algorithm"); s != "" {
		algo, err := kmers.ParseType(s)
		raiseError(err)
		anno.Algorithm = algo
	}
}

// Package kmeranno projects protein annotations from close reference
// genomes onto a newly assembled genome by matching protein kmers
// against the six-frame translation of the new genome's contigs.
package kmeranno

import (
	"log"
	"os"
)

// Package loggers. The command layer may reassign them.
var (
	Info = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
)

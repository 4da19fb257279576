package kmeranno

import (
	"runtime"
	"sync"

	"github.com/mingzhi/kmeranno/genome"
)

// BatchResult reports the outcome of one genome in a batch run.
type BatchResult struct {
	Genome *genome.Genome
	Stats  *Stats
	Err    error
}

// AnnotateBatch annotates every genome from the channel on ncpu
// workers. Each genome's run is independent; a run that fails is
// reported and does not stop the batch. The returned total folds the
// per-genome counters together under a lock.
func (a *Annotator) AnnotateBatch(genomes <-chan *genome.Genome, ncpu int, results chan<- BatchResult) *Stats {
	if ncpu < 1 {
		ncpu = runtime.GOMAXPROCS(0)
	}
	total := new(Stats)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < ncpu; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range genomes {
				stats, err := a.Annotate(g)
				if err != nil {
					Warn.Printf("genome %s failed: %v", g.ID, err)
				}
				mu.Lock()
				total.Add(stats)
				mu.Unlock()
				if results != nil {
					results <- BatchResult{Genome: g, Stats: stats, Err: err}
				}
			}
		}()
	}
	wg.Wait()
	if results != nil {
		close(results)
	}
	return total
}

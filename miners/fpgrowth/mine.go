package fpgrowth

import (
	"runtime"
	"sync"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/fptree"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
	"github.com/Aka2210/Hamm-Algorithm/miners"
	"github.com/Aka2210/Hamm-Algorithm/types/itemset"
)

// Miner drives FP-Growth over a loaded transaction database: one tree
// build, then depth first projection, with the single-path shortcut on
// unless NoLinear is set. With parallelism > 1 the top level header
// entries are mined by a worker pool; they share only the read-only
// top level tree, so the workers need no locks, and the pattern stream
// is merged by a single reporting loop.
type Miner struct {
	Config   *config.Config
	NoLinear bool
}

func NewMiner(conf *config.Config, noLinear bool) *Miner {
	return &Miner{
		Config:   conf,
		NoLinear: noLinear,
	}
}

func (m *Miner) Close() error {
	return nil
}

func (m *Miner) Mine(dt lattice.DataType, rptr miners.Reporter, fmtr lattice.Formatter) error {
	start := time.Now()
	headers := fptree.BuildHeaders(dt.ItemCounts(), dt.MinSup())
	tree := fptree.NewTree(headers)
	for _, tx := range dt.Transactions() {
		tree.Add(tx, 1)
	}
	errors.Logf("INFO", "built tree: %d frequent items of %d", len(headers), len(dt.ItemCounts()))

	miner := &fptree.Miner{MinSup: dt.MinSup(), NoLinear: m.NoLinear}
	count := 0
	var err error
	if m.Config.Workers() <= 1 {
		err = miner.Mine(tree, func(items []int32, support int) error {
			count++
			return rptr.Report(itemset.NewPattern(items, support))
		})
	} else {
		count, err = m.parallel(miner, tree, rptr)
	}
	if err != nil {
		return err
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	errors.Logf("INFO", "mined %v patterns in %v ms, heap in use %v KB",
		count, time.Since(start).Milliseconds(), ms.HeapInuse/1024)
	return nil
}

func (m *Miner) parallel(miner *fptree.Miner, tree *fptree.Tree, rptr miners.Reporter) (int, error) {
	entries := make(chan int)
	patterns := make(chan *itemset.Pattern)
	errorCh := make(chan error)

	go func() {
		for i := range tree.Headers() {
			entries <- i
		}
		close(entries)
	}()

	workers := m.Config.Workers()
	var workersWg sync.WaitGroup
	workersWg.Add(workers)
	for x := 0; x < workers; x++ {
		go func() {
			for i := range entries {
				err := miner.MineEntry(tree, i, nil, func(items []int32, support int) error {
					patterns <- itemset.NewPattern(items, support)
					return nil
				})
				if err != nil {
					errorCh <- err
					break
				}
			}
			// drain so the feeder never blocks on a dead pool
			for range entries {
			}
			workersWg.Done()
		}()
	}
	go func() {
		workersWg.Wait()
		close(patterns)
		close(errorCh)
	}()

	var dataWg sync.WaitGroup
	errs := make([]error, 0, 10)
	dataWg.Add(1)
	go func() {
		for err := range errorCh {
			errs = append(errs, err)
		}
		dataWg.Done()
	}()

	count := 0
	var reportErr error
	for p := range patterns {
		if reportErr != nil {
			continue
		}
		count++
		if err := rptr.Report(p); err != nil {
			reportErr = err
		}
	}
	dataWg.Wait()
	if reportErr != nil {
		return count, reportErr
	}
	if len(errs) > 0 {
		return count, errs[0]
	}
	return count, nil
}

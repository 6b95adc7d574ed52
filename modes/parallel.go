package modes

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cryptocex/cex/errs"
)

// ParallelConfig controls whether CTR and CBC-decrypt split their block
// work across a worker pool.
type ParallelConfig struct {
	// Enabled turns on worker-pool processing.
	Enabled bool

	// MaxWorkers is the worker goroutine count. 0 defaults to
	// runtime.NumCPU().
	MaxWorkers int

	// MinBlocksForParallel is the block-count floor below which
	// sequential processing is used even when Enabled is true.
	MinBlocksForParallel int
}

// Validate checks the configuration's bounds.
func (p *ParallelConfig) Validate() error {
	if !p.Enabled {
		return nil
	}
	if p.MaxWorkers < 0 {
		return errs.NewInvalidArgument("MaxWorkers", p.MaxWorkers, "must not be negative")
	}
	if p.MaxWorkers > 1024 {
		return errs.NewInvalidArgument("MaxWorkers", p.MaxWorkers, "must not exceed 1024")
	}
	if p.MinBlocksForParallel < 1 {
		return errs.NewInvalidArgument("MinBlocksForParallel", p.MinBlocksForParallel, "must be at least 1")
	}
	return nil
}

// DefaultParallelConfig returns the default parallel processing
// configuration: enabled, one worker per CPU, at least 4 blocks before
// switching off sequential processing.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Enabled:              true,
		MaxWorkers:           runtime.NumCPU(),
		MinBlocksForParallel: 4,
	}
}

// runBlockJobs runs fn(i) for each i in [0, numBlocks) either
// sequentially or across a worker pool, depending on cfg. fn must write
// its result to block i's own slot and must not touch any other
// goroutine's slot.
func runBlockJobs(cfg ParallelConfig, numBlocks int, fn func(i int) error) error {
	if numBlocks == 0 {
		return nil
	}
	if !cfg.Enabled || numBlocks < cfg.MinBlocksForParallel {
		for i := 0; i < numBlocks; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	numWorkers := cfg.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > numBlocks {
		numWorkers = numBlocks
	}

	var wg sync.WaitGroup
	jobChan := make(chan int, numBlocks)
	errChan := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					err := fmt.Errorf("panic in block worker: %v", r)
					select {
					case errChan <- err:
					default:
					}
				}
			}()
			for idx := range jobChan {
				if err := fn(idx); err != nil {
					select {
					case errChan <- err:
					default:
					}
					return
				}
			}
		}()
	}

	for i := 0; i < numBlocks; i++ {
		jobChan <- i
	}
	close(jobChan)
	wg.Wait()
	close(errChan)

	select {
	case err := <-errChan:
		return err
	default:
		return nil
	}
}

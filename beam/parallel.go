package beam

import "golang.org/x/sync/errgroup"

// cycleParallel runs cycleBranch for every active branch on its own
// goroutine, bounded to cfg.workers concurrent branches. Distinct
// branches only ever touch their own chunk of the slab, so this is
// safe without further synchronization.
func (b *Beam[T]) cycleParallel() error {
	workers := b.cfg.workers
	if workers < 1 {
		workers = 1
	}

	results := make([]error, b.active)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < b.active; i++ {
		i := i
		g.Go(func() error {
			results[i] = b.cycleBranch(i)
			return nil
		})
	}
	_ = g.Wait()

	allExhausted := true
	for _, err := range results {
		if err == nil {
			allExhausted = false
		}
	}
	if allExhausted {
		return ErrExhausted
	}
	return nil
}

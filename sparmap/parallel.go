package sparmap

import "golang.org/x/sync/errgroup"

// QueryAllMut applies f to the value addressed by each present key in
// ks, fanned out across up to workers goroutines. Safe for concurrent
// use because distinct keys address distinct dense indices, hence
// distinct vals cells (spec's parallel query_all_mut guarantee); f must
// not touch any key outside the one it was called for.
func (m *SparMap[K, V]) QueryAllMut(ks []K, workers int, f func(K, *V)) error {
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, k := range ks {
		k := k
		g.Go(func() error {
			if ptr, ok := m.QueryOneMut(k); ok {
				f(k, ptr)
			}
			return nil
		})
	}
	return g.Wait()
}

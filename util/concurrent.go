package util

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

type concurrentOutputWithOrdering[T any] struct {
	order  int
	output T
}

// ConcurrentMapFuncWithError applies f to every input with at most
// concurrency workers and returns the outputs in input order. concurrency 0
// disables parallelism; a negative value removes the limit. The first error
// cancels the batch and no outputs are returned.
func ConcurrentMapFuncWithError[Tin any, Tout any](inputs []Tin, concurrency int, f func(Tin) (Tout, error)) ([]Tout, error) {
	eg := errgroup.Group{}
	if concurrency == 0 {
		eg.SetLimit(1)
	} else if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	ch := make(chan concurrentOutputWithOrdering[Tout], len(inputs))
	for i := range inputs {
		order := i
		in := inputs[i]
		eg.Go(func() error {
			out, err := f(in)
			if err != nil {
				return err
			}
			ch <- concurrentOutputWithOrdering[Tout]{order, out}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		close(ch)
		return nil, err
	}
	close(ch)

	tmp := make([]concurrentOutputWithOrdering[Tout], 0, len(inputs))
	for t := range ch {
		tmp = append(tmp, t)
	}
	slices.SortFunc(tmp, func(a, b concurrentOutputWithOrdering[Tout]) int {
		return cmp.Compare(a.order, b.order)
	})

	return TransformSlice(tmp, func(t concurrentOutputWithOrdering[Tout]) Tout {
		return t.output
	}), nil
}

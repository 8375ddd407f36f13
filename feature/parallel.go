package feature

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// TaggedPair is a pair of tagged sentences waiting for extraction.
type TaggedPair struct {
	Sentence1 string
	Sentence2 string
}

// ExtractAll extracts the features of many pairs with up to workers
// goroutines. The result is in the order of pairs. The first error stops the
// remaining extractions.
func ExtractAll(ctx context.Context, e *Extractor, pairs []TaggedPair, workers int) ([]Features, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Features, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pairs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ff, err := e.Extract(pairs[i].Sentence1, pairs[i].Sentence2)
			if err != nil {
				return errors.Wrapf(err, "pair %d", i)
			}
			results[i] = ff
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

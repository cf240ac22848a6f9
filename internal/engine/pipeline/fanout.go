package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut runs op for every directory concurrently and waits for all of them.
// Siblings of a failing call are not cancelled. It returns the directories for
// which op succeeded, in input order, and the error of the first failing
// directory in input order.
func FanOut(ctx context.Context, dirs []string, op func(ctx context.Context, dir string) error) ([]string, error) {
	errs := make([]error, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			errs[i] = op(ctx, dir)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := make([]string, 0, len(dirs))
	var first error
	for i, dir := range dirs {
		if errs[i] != nil {
			if first == nil {
				first = errs[i]
			}
			continue
		}
		succeeded = append(succeeded, dir)
	}
	return succeeded, first
}

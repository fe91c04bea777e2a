package snapshot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
)

// ParallelWriter fans a snapshot out to every writer and fails if one of them
// fails.
type ParallelWriter struct {
	writers []repo.SnapshotWriter
}

func NewParallelWriter(writers ...repo.SnapshotWriter) ParallelWriter {
	return ParallelWriter{
		writers: writers,
	}
}

func (p ParallelWriter) WriteSnapshot(ctx context.Context, snapshot entity.Snapshot) error {
	group, ctx := errgroup.WithContext(ctx)

	for _, w := range p.writers {
		writer := w

		group.Go(func() error {
			return writer.WriteSnapshot(ctx, snapshot)
		})
	}

	return group.Wait()
}

package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

// FileWriter keeps a local copy of each snapshot as <dir>/<type>-<timestamp>.ndjson.
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) FileWriter {
	return FileWriter{
		dir: dir,
	}
}

func (w FileWriter) WriteSnapshot(ctx context.Context, snapshot entity.Snapshot) error {
	if snapshot.Type == "" {
		return errMissingType
	}

	err := ctx.Err()
	if err != nil {
		return err
	}

	body, err := encode(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	err = os.MkdirAll(w.dir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.dir, err)
	}

	path := w.path(snapshot)

	// Readers never see a partial snapshot
	tmp, err := os.CreateTemp(w.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(body)
	if err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return fmt.Errorf("failed to move snapshot to %s: %w", path, err)
	}

	return nil
}

func (w FileWriter) path(snapshot entity.Snapshot) string {
	name := fmt.Sprintf("%s-%s.ndjson", snapshot.Type, snapshot.Timestamp.UTC().Format("20060102T150405Z"))

	return filepath.Join(w.dir, name)
}

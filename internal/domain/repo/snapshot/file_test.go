package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/snapshot"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

func TestFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	err := snapshot.NewFileWriter(dir).WriteSnapshot(context.TODO(), entity.Snapshot{
		Type:      resource.Cluster,
		Timestamp: time.Date(2025, 3, 3, 15, 19, 54, 0, time.UTC),
		Resources: []resource.Resource{newCluster(t, "c1")},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are removed")
	assert.Equal(t, "Cluster-20250303T151954Z.ndjson", entries[0].Name())

	body, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Clusters":{"cluster_id":"c1","total_hosts":3}}`, strings.TrimSpace(string(body)))
}

func TestFileWriterMissingType(t *testing.T) {
	err := snapshot.NewFileWriter(t.TempDir()).WriteSnapshot(context.TODO(), entity.Snapshot{Timestamp: time.Now()})
	assert.Error(t, err)
}

func TestParallelWriterS3AndFile(t *testing.T) {
	putter := &fakePutter{}
	dir := t.TempDir()

	writer := snapshot.NewParallelWriter(
		snapshot.NewS3Writer(putter, "bucket", "snapshots"),
		snapshot.NewFileWriter(dir),
	)

	err := writer.WriteSnapshot(context.TODO(), entity.Snapshot{
		Type:      resource.Cluster,
		Timestamp: time.Date(2025, 3, 3, 15, 19, 54, 0, time.UTC),
		Resources: []resource.Resource{newCluster(t, "c1")},
	})
	require.NoError(t, err)

	assert.Contains(t, putter.objects, "bucket/snapshots/2025/03/03/Cluster/151954.ndjson")
	assert.FileExists(t, filepath.Join(dir, "Cluster-20250303T151954Z.ndjson"))
}

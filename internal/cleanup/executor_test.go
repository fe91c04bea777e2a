package cleanup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshift-assisted/cluster-resources/internal/cleanup"
)

type fakeStore struct {
	clusterID string
	before    time.Time

	hosts      int
	cluster    bool
	clusterErr error
}

func (f *fakeStore) PurgeHostStates(_ context.Context, clusterID string, before time.Time) (int, error) {
	f.clusterID = clusterID
	f.before = before

	return f.hosts, nil
}

func (f *fakeStore) PurgeClusterState(context.Context, string, time.Time) (bool, error) {
	return f.cluster, f.clusterErr
}

func TestExecute(t *testing.T) {
	ts := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{hosts: 2, cluster: true}

	policy, err := cleanup.TimeBasedDeletePolicy(ts, "c1")
	require.NoError(t, err)

	res, err := cleanup.NewExecutor(store).WithLogger(logr.Discard()).Execute(context.TODO(), policy)
	require.NoError(t, err)

	assert.Equal(t, cleanup.Result{Hosts: 2, Cluster: true}, res)
	assert.Equal(t, "c1", store.clusterID)
	assert.Equal(t, ts, store.before)
}

func TestExecuteFailure(t *testing.T) {
	store := &fakeStore{hosts: 1, clusterErr: errors.New("boom")}

	policy, err := cleanup.TimeBasedDeletePolicy(time.Now(), "c1")
	require.NoError(t, err)

	res, err := cleanup.NewExecutor(store).Execute(context.TODO(), policy)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, 1, res.Hosts)
}

func TestExecuteZeroPolicy(t *testing.T) {
	_, err := cleanup.NewExecutor(&fakeStore{}).Execute(context.TODO(), cleanup.Policy{})
	assert.Error(t, err)
}

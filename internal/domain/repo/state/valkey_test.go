package state_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/valkey-io/valkey-go"

	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/state"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

// Helper

func startValkey(t *testing.T) testcontainers.Container {
	req := testcontainers.ContainerRequest{
		Image:        "quay.io/sclorg/valkey-7-c10s:bf91acf0827dc5db216164aafe3d34beb245dcec",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections tcp"),
	}
	ret, err := testcontainers.GenericContainer(context.Background(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	testcontainers.CleanupContainer(t, ret)

	require.NoError(t, err, "failed to start valkey instance")

	return ret
}

func createValkeyClient(t *testing.T, container testcontainers.Container) valkey.Client {
	endpoint, err := container.Endpoint(context.Background(), "")
	require.NoError(t, err, "failed to get valkey endpoint")

	ret, closeFunc, err := factory.CreateValkeyClient(context.Background(), config.Valkey{URL: endpoint})
	require.NoError(t, err, "failed to create valkey client")

	t.Cleanup(func() {
		_ = closeFunc(context.Background())
	})

	return ret
}

// Test suite definition

type ValkeyStateIntegrationTestSuite struct {
	suite.Suite

	client    valkey.Client
	repo      state.ValkeyRepo
	container testcontainers.Container
}

func (s *ValkeyStateIntegrationTestSuite) SetupSuite() {
	t := s.T()

	s.container = startValkey(t)
	s.client = createValkeyClient(t, s.container)
	s.repo = state.NewValkeyRepo(s.client, time.Minute)
}

func (s *ValkeyStateIntegrationTestSuite) TearDownTest() {
	ctx := context.Background()
	command := s.client.B().Flushall().Build()

	err := s.client.Do(ctx, command).Error()
	require.NoError(s.T(), err, "failed to clean valkey")
}

// Run test

func TestValkeyStateIntegrationTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(ValkeyStateIntegrationTestSuite))
}

// Test

func (s *ValkeyStateIntegrationTestSuite) TestInsertAndReadHost() {
	ctx := context.Background()
	t := s.T()

	hostState := entity.HostState{ClusterID: "cluster-id", HostID: "host-id", Payload: map[string]interface{}{"test": "a"}}
	err := s.repo.WriteHostState(ctx, hostState)
	require.NoError(t, err, "failed to write host state")

	res, err := s.repo.GetHostStates(ctx, "cluster-id")
	require.NoError(t, err, "failed to get host states")

	require.Len(t, res, 1, "unexpected number of host state: %d", len(res))
	assert.Equal(t, hostState, res[0], "different host state")
}

func (s *ValkeyStateIntegrationTestSuite) TestOverwriteHost() {
	ctx := context.Background()
	t := s.T()

	hostState := entity.HostState{ClusterID: "cluster-id", HostID: "host-id", Payload: map[string]interface{}{"test": "a"}}
	err := s.repo.WriteHostState(ctx, hostState)
	require.NoError(t, err, "failed to write host state (1)")

	hostState.Payload = map[string]interface{}{"new": "data"}

	err = s.repo.WriteHostState(ctx, hostState)
	require.NoError(t, err, "failed to write host state (2)")

	res, err := s.repo.GetHostStates(ctx, "cluster-id")
	require.NoError(t, err, "failed to get host states")

	require.Len(t, res, 1, "unexpected number of host state: %d", len(res))
	assert.Equal(t, hostState, res[0], "different host state")
}

func (s *ValkeyStateIntegrationTestSuite) TestGetUnknownCluster() {
	ctx := context.Background()
	t := s.T()

	res, err := s.repo.GetHostStates(ctx, "random")
	require.NoError(t, err, "failed to get host states")
	require.Len(t, res, 0, "unexpected number of host state: %d", len(res))

	clusters, err := s.repo.GetClusterStates(ctx)
	require.NoError(t, err, "failed to get cluster states")
	require.Len(t, clusters, 0, "unexpected number of cluster state: %d", len(clusters))
}

func (s *ValkeyStateIntegrationTestSuite) TestListHosts() {
	ctx := context.Background()
	t := s.T()

	for _, ids := range [][2]string{{"c1", "h2"}, {"c1", "h1"}, {"c2", "h3"}} {
		err := s.repo.WriteHostState(ctx, entity.HostState{ClusterID: ids[0], HostID: ids[1], Payload: map[string]interface{}{"id": ids[1]}})
		require.NoError(t, err, "failed to write host state")
	}

	res, err := s.repo.ListHostStates(ctx)
	require.NoError(t, err, "failed to list host states")

	require.Len(t, res, 3)
	assert.Equal(t, "h1", res[0].HostID, "sorted by cluster then host")
	assert.Equal(t, "h2", res[1].HostID)
	assert.Equal(t, "c2", res[2].ClusterID)
}

func (s *ValkeyStateIntegrationTestSuite) TestInsertAndReadCluster() {
	ctx := context.Background()
	t := s.T()

	clusterState := entity.ClusterState{
		ClusterID: "cluster-id",
		Payload:   map[string]interface{}{"name": "c", "total_host_count": 3},
		Metadata:  map[string]interface{}{"source": "test"},
	}

	err := s.repo.WriteClusterState(ctx, clusterState)
	require.NoError(t, err, "failed to write cluster state")

	res, err := s.repo.GetClusterStates(ctx)
	require.NoError(t, err, "failed to get cluster states")
	require.Len(t, res, 1)

	assert.Equal(t, "cluster-id", res[0].ClusterID)
	assert.Equal(t, json.Number("3"), res[0].Payload["total_host_count"], "numbers are kept as json.Number")
	assert.Equal(t, clusterState.Metadata, res[0].Metadata)
}

func (s *ValkeyStateIntegrationTestSuite) TestExpiredClusterIsForgotten() {
	ctx := context.Background()
	t := s.T()

	err := s.repo.WriteClusterState(ctx, entity.ClusterState{ClusterID: "cluster-id"})
	require.NoError(t, err, "failed to write cluster state")

	// This is breaking black-box testing but is convenient...
	err = s.client.Do(ctx, s.client.B().Del().Key("cluster:cluster-id").Build()).Error()
	require.NoError(t, err, "failed to delete key")

	res, err := s.repo.GetClusterStates(ctx)
	require.NoError(t, err, "failed to get cluster states")
	assert.Len(t, res, 0)

	members, err := s.client.Do(ctx, s.client.B().Smembers().Key("clusters").Build()).AsStrSlice()
	require.NoError(t, err)
	assert.Empty(t, members, "index is cleaned")
}

func (s *ValkeyStateIntegrationTestSuite) TestExpiration() {
	ctx := context.Background()
	t := s.T()

	hostState := entity.HostState{ClusterID: "cluster-id", HostID: "host-id", Payload: map[string]interface{}{"test": "a"}}
	err := s.repo.WriteHostState(ctx, hostState)
	require.NoError(t, err, "failed to write host state")

	err = s.repo.WriteClusterState(ctx, entity.ClusterState{ClusterID: "cluster-id"})
	require.NoError(t, err, "failed to write cluster state")

	for _, key := range []string{"hosts:cluster-id", "cluster:cluster-id"} {
		resp := s.client.Do(ctx, s.client.B().Ttl().Key(key).Build())
		require.NoError(t, resp.Error(), "failed to get TTL")

		ttl, err := resp.AsInt64() // ttl in second
		require.NoError(t, err, "TTL is not a int64")

		// This command returns -2 if key does not exist
		// This command returns -1 if key exists but has no TTL
		assert.Greater(t, ttl, int64(45), "ttl of %s is supposed to be 1min", key) // Keeping some margin
	}
}

func (s *ValkeyStateIntegrationTestSuite) TestMissingIDs() {
	ctx := context.Background()
	t := s.T()

	err := s.repo.WriteHostState(ctx, entity.HostState{ClusterID: "cluster-id"})
	assert.Error(t, err)

	err = s.repo.WriteClusterState(ctx, entity.ClusterState{})
	assert.Error(t, err)
}

func (s *ValkeyStateIntegrationTestSuite) TestPurge() {
	ctx := context.Background()
	t := s.T()

	cutoff := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	for hostID, updatedAt := range map[string]time.Time{
		"old":    cutoff.Add(-time.Hour),
		"recent": cutoff.Add(time.Hour),
	} {
		err := s.repo.WriteHostState(ctx, entity.HostState{ClusterID: "cluster-id", HostID: hostID, UpdatedAt: updatedAt})
		require.NoError(t, err, "failed to write host state")
	}

	err := s.repo.WriteClusterState(ctx, entity.ClusterState{ClusterID: "cluster-id", UpdatedAt: cutoff.Add(-time.Minute)})
	require.NoError(t, err, "failed to write cluster state")

	count, err := s.repo.PurgeHostStates(ctx, "cluster-id", cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	hosts, err := s.repo.GetHostStates(ctx, "cluster-id")
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "recent", hosts[0].HostID)

	deleted, err := s.repo.PurgeClusterState(ctx, "cluster-id", cutoff)
	require.NoError(t, err)
	assert.True(t, deleted)

	clusters, err := s.repo.GetClusterStates(ctx)
	require.NoError(t, err)
	assert.Empty(t, clusters)

	deleted, err = s.repo.PurgeClusterState(ctx, "cluster-id", cutoff)
	require.NoError(t, err)
	assert.False(t, deleted, "nothing left to purge")
}

func (s *ValkeyStateIntegrationTestSuite) TestPurgeKeepsRewrittenStates() {
	ctx := context.Background()
	t := s.T()

	cutoff := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	old := entity.HostState{ClusterID: "cluster-id", HostID: "host-id", UpdatedAt: cutoff.Add(-time.Hour)}
	require.NoError(t, s.repo.WriteHostState(ctx, old))

	stale, err := state.StaleHostStates(s.repo, ctx, "cluster-id", cutoff)
	require.NoError(t, err)
	require.Len(t, stale, 1)

	// the host is updated by ingest before the delete
	old.UpdatedAt = cutoff.Add(time.Hour)
	require.NoError(t, s.repo.WriteHostState(ctx, old))

	count, err := state.DeleteUnchangedHosts(s.repo, ctx, "cluster-id", stale)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	hosts, err := s.repo.GetHostStates(ctx, "cluster-id")
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.True(t, hosts[0].UpdatedAt.Equal(cutoff.Add(time.Hour)))

	// same for the cluster state
	cluster := entity.ClusterState{ClusterID: "cluster-id", UpdatedAt: cutoff.Add(-time.Hour)}
	require.NoError(t, s.repo.WriteClusterState(ctx, cluster))

	jsonState, err := s.client.Do(ctx, s.client.B().Get().Key("cluster:cluster-id").Build()).ToString()
	require.NoError(t, err)

	cluster.UpdatedAt = cutoff.Add(time.Hour)
	require.NoError(t, s.repo.WriteClusterState(ctx, cluster))

	deleted, err := state.DeleteUnchangedCluster(s.repo, ctx, "cluster-id", jsonState)
	require.NoError(t, err)
	assert.False(t, deleted)

	clusters, err := s.repo.GetClusterStates(ctx)
	require.NoError(t, err)
	assert.Len(t, clusters, 1)
}

func TestLosingConnection(t *testing.T) {
	t.Parallel()

	container := startValkey(t)
	client := createValkeyClient(t, container)
	repo := state.NewValkeyRepo(client, time.Minute)

	// stop the container
	err := container.Terminate(context.Background())
	require.NoError(t, err, "failed to terminate valkey")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = repo.GetHostStates(ctx, "unknown")
	require.Error(t, err, "get host states should fail")

	require.ErrorIs(t, err, provider.ErrRetryableError, "error should be retryable: %v", reflect.TypeOf(err))
}

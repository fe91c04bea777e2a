package state

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

// Layout:
//
//	cluster:<clusterID>  string, JSON State, expires
//	clusters             set of cluster ids holding a cluster state
//	hosts:<clusterID>    hash hostID -> JSON State, expires
//	host-clusters        set of cluster ids holding host states
const (
	clusterKeyPrefix  = "cluster:"
	clusterIndexKey   = "clusters"
	hostKeyPrefix     = "hosts:"
	hostIndexKey      = "host-clusters"
	defaultExpiration = 24 * time.Hour
)

var errMissingID = errors.New("missing id")

type ValkeyRepo struct {
	client     valkey.Client
	expiration time.Duration
}

func NewValkeyRepo(client valkey.Client, expiration time.Duration) ValkeyRepo {
	if expiration <= 0 {
		expiration = defaultExpiration
	}

	return ValkeyRepo{
		client:     client,
		expiration: expiration,
	}
}

// Cluster

func (r ValkeyRepo) WriteClusterState(ctx context.Context, event entity.ClusterState) error {
	if event.ClusterID == "" {
		return common.NewError(errMissingID, "invalid cluster state")
	}

	data, err := json.Marshal(clusterToModels(event))
	if err != nil {
		return common.NewError(err, "failed to marshal cluster state")
	}

	commands := []valkey.Completed{
		r.client.B().Set().Key(clusterKeyPrefix + event.ClusterID).Value(string(data)).ExSeconds(int64(r.expiration.Seconds())).Build(),
		r.client.B().Sadd().Key(clusterIndexKey).Member(event.ClusterID).Build(),
	}

	for _, resp := range r.client.DoMulti(ctx, commands...) {
		err = resp.Error()
		if err != nil {
			return r.wrapError(err, "failed to write cluster state %s", event.ClusterID)
		}
	}

	return nil
}

func (r ValkeyRepo) GetClusterStates(ctx context.Context) ([]entity.ClusterState, error) {
	clusterIDs, err := r.members(ctx, clusterIndexKey)
	if err != nil {
		return nil, err
	}

	if len(clusterIDs) == 0 {
		return []entity.ClusterState{}, nil
	}

	keys := make([]string, 0, len(clusterIDs))
	for _, clusterID := range clusterIDs {
		keys = append(keys, clusterKeyPrefix+clusterID)
	}

	values, err := r.client.Do(ctx, r.client.B().Mget().Key(keys...).Build()).ToArray()
	if err != nil {
		return nil, r.wrapError(err, "failed to get cluster states")
	}

	ret := make([]entity.ClusterState, 0, len(values))
	expired := []string{}

	for i, value := range values {
		jsonState, err := value.ToString()
		if valkey.IsValkeyNil(err) {
			expired = append(expired, clusterIDs[i])

			continue
		}

		if err != nil {
			return nil, common.NewError(err, "unexpected mget response type for %s", clusterIDs[i])
		}

		model, err := decodeState(jsonState)
		if err != nil {
			return nil, common.NewError(err, "failed to unmarshal cluster state %s", clusterIDs[i])
		}

		ret = append(ret, clusterToEntity(clusterIDs[i], model))
	}

	r.forget(ctx, clusterIndexKey, expired)

	return ret, nil
}

// Host

func (r ValkeyRepo) WriteHostState(ctx context.Context, event entity.HostState) error {
	if event.ClusterID == "" || event.HostID == "" {
		return common.NewError(errMissingID, "invalid host state")
	}

	data, err := json.Marshal(hostToModels(event))
	if err != nil {
		return common.NewError(err, "failed to marshal host state")
	}

	key := hostKeyPrefix + event.ClusterID

	commands := []valkey.Completed{
		r.client.B().Hset().Key(key).FieldValue().FieldValue(event.HostID, string(data)).Build(),
		r.client.B().Expire().Key(key).Seconds(int64(r.expiration.Seconds())).Build(),
		r.client.B().Sadd().Key(hostIndexKey).Member(event.ClusterID).Build(),
	}

	for _, resp := range r.client.DoMulti(ctx, commands...) {
		err = resp.Error()
		if err != nil {
			return r.wrapError(err, "failed to write host state %s/%s", event.ClusterID, event.HostID)
		}
	}

	return nil
}

func (r ValkeyRepo) GetHostStates(ctx context.Context, clusterID string) ([]entity.HostState, error) {
	command := r.client.B().Hgetall().Key(hostKeyPrefix + clusterID).Build()

	resp := r.client.Do(ctx, command)

	err := resp.Error()
	if err != nil {
		return nil, r.wrapError(err, "failed to get host states of %s", clusterID)
	}

	result, err := resp.AsStrMap()
	if err != nil {
		return nil, common.NewError(err, "unexpected hgetall response type for %s", clusterID)
	}

	ret := make([]entity.HostState, 0, len(result))

	for hostID, jsonHost := range result {
		model, err := decodeState(jsonHost)
		if err != nil {
			return nil, common.NewError(err, "failed to unmarshal hgetall response for %s %s", clusterID, hostID)
		}

		ret = append(ret, hostToEntity(clusterID, hostID, model))
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].HostID < ret[j].HostID
	})

	return ret, nil
}

func (r ValkeyRepo) ListHostStates(ctx context.Context) ([]entity.HostState, error) {
	clusterIDs, err := r.members(ctx, hostIndexKey)
	if err != nil {
		return nil, err
	}

	ret := []entity.HostState{}
	expired := []string{}

	for _, clusterID := range clusterIDs {
		states, err := r.GetHostStates(ctx, clusterID)
		if err != nil {
			return nil, err
		}

		if len(states) == 0 {
			expired = append(expired, clusterID)
		}

		ret = append(ret, states...)
	}

	r.forget(ctx, hostIndexKey, expired)

	return ret, nil
}

// Purge

// The purge scripts delete a state only if it still holds the value read
// before, so a state rewritten in between is kept.
var (
	purgeHostsScript = valkey.NewLuaScript(`
local deleted = 0
for i = 1, #ARGV, 2 do
  if redis.call('HGET', KEYS[1], ARGV[i]) == ARGV[i + 1] then
    deleted = deleted + redis.call('HDEL', KEYS[1], ARGV[i])
  end
end
return deleted
`)

	purgeClusterScript = valkey.NewLuaScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
  return 0
end
redis.call('DEL', KEYS[1])
redis.call('SREM', KEYS[2], ARGV[2])
return 1
`)
)

// PurgeHostStates deletes the host states of clusterID last updated before
// the given date. It returns the number of deleted hosts.
func (r ValkeyRepo) PurgeHostStates(ctx context.Context, clusterID string, before time.Time) (int, error) {
	stale, err := r.staleHostStates(ctx, clusterID, before)
	if err != nil {
		return 0, err
	}

	return r.deleteUnchangedHosts(ctx, clusterID, stale)
}

// staleHostStates returns the stored host states updated before the given
// date, by host id.
func (r ValkeyRepo) staleHostStates(ctx context.Context, clusterID string, before time.Time) (map[string]string, error) {
	resp := r.client.Do(ctx, r.client.B().Hgetall().Key(hostKeyPrefix+clusterID).Build())

	err := resp.Error()
	if err != nil {
		return nil, r.wrapError(err, "failed to get host states of %s", clusterID)
	}

	result, err := resp.AsStrMap()
	if err != nil {
		return nil, common.NewError(err, "unexpected hgetall response type for %s", clusterID)
	}

	ret := map[string]string{}

	for hostID, jsonHost := range result {
		model, err := decodeState(jsonHost)
		if err != nil {
			return nil, common.NewError(err, "failed to unmarshal host state %s/%s", clusterID, hostID)
		}

		if model.UpdatedAt.Before(before) {
			ret[hostID] = jsonHost
		}
	}

	return ret, nil
}

func (r ValkeyRepo) deleteUnchangedHosts(ctx context.Context, clusterID string, stale map[string]string) (int, error) {
	if len(stale) == 0 {
		return 0, nil
	}

	hostIDs := make([]string, 0, len(stale))
	for hostID := range stale {
		hostIDs = append(hostIDs, hostID)
	}

	sort.Strings(hostIDs)

	args := make([]string, 0, 2*len(hostIDs))
	for _, hostID := range hostIDs {
		args = append(args, hostID, stale[hostID])
	}

	deleted, err := purgeHostsScript.Exec(ctx, r.client, []string{hostKeyPrefix + clusterID}, args).AsInt64()
	if err != nil {
		return 0, r.wrapError(err, "failed to purge host states of %s", clusterID)
	}

	return int(deleted), nil
}

// PurgeClusterState deletes the cluster state if it was last updated before
// the given date.
func (r ValkeyRepo) PurgeClusterState(ctx context.Context, clusterID string, before time.Time) (bool, error) {
	resp := r.client.Do(ctx, r.client.B().Get().Key(clusterKeyPrefix+clusterID).Build())

	jsonState, err := resp.ToString()
	if valkey.IsValkeyNil(err) {
		return false, nil
	}

	if err != nil {
		return false, r.wrapError(err, "failed to get cluster state %s", clusterID)
	}

	model, err := decodeState(jsonState)
	if err != nil {
		return false, common.NewError(err, "failed to unmarshal cluster state %s", clusterID)
	}

	if !model.UpdatedAt.Before(before) {
		return false, nil
	}

	return r.deleteUnchangedCluster(ctx, clusterID, jsonState)
}

func (r ValkeyRepo) deleteUnchangedCluster(ctx context.Context, clusterID string, jsonState string) (bool, error) {
	keys := []string{clusterKeyPrefix + clusterID, clusterIndexKey}

	deleted, err := purgeClusterScript.Exec(ctx, r.client, keys, []string{jsonState, clusterID}).AsInt64()
	if err != nil {
		return false, r.wrapError(err, "failed to purge cluster state %s", clusterID)
	}

	return deleted == 1, nil
}

// Helpers

func (r ValkeyRepo) members(ctx context.Context, key string) ([]string, error) {
	ret, err := r.client.Do(ctx, r.client.B().Smembers().Key(key).Build()).AsStrSlice()
	if err != nil {
		return nil, r.wrapError(err, "failed to get members of %s", key)
	}

	sort.Strings(ret)

	return ret, nil
}

// forget drops expired entries from an index. Failures are ignored: the next
// read will try again.
func (r ValkeyRepo) forget(ctx context.Context, key string, members []string) {
	if len(members) == 0 {
		return
	}

	_ = r.client.Do(ctx, r.client.B().Srem().Key(key).Member(members...).Build()).Error()
}

func (r ValkeyRepo) wrapError(err error, reason string, args ...interface{}) error {
	if r.isRetryable(err) {
		return common.NewRetryableError(err, reason, args...)
	}

	return common.NewError(err, reason, args...)
}

func (r ValkeyRepo) isRetryable(err error) bool {
	// Network error
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Valkey specific error
	vErr, isValkeyError := valkey.IsValkeyErr(err)
	if !isValkeyError {
		return false
	}

	return vErr.IsTryAgain() || vErr.IsClusterDown()
}

// decodeState keeps numbers as json.Number so integer payload fields stay
// integers once projected.
func decodeState(data string) (State, error) {
	ret := State{}

	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.UseNumber()

	err := decoder.Decode(&ret)
	if err != nil {
		return State{}, err
	}

	return ret, nil
}

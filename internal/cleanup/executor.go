package cleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

var errUnsupportedPurgePolicy = errors.New("unsupported purge policy")

type Store interface {
	PurgeHostStates(ctx context.Context, clusterID string, before time.Time) (int, error)
	PurgeClusterState(ctx context.Context, clusterID string, before time.Time) (bool, error)
}

type Result struct {
	Hosts   int
	Cluster bool
}

// Executor applies policies to the state store.
type Executor struct {
	store  Store
	logger *logr.Logger
}

func NewExecutor(store Store) Executor {
	return Executor{
		store: store,
	}
}

func (e Executor) WithLogger(logger logr.Logger) Executor {
	e.logger = &logger

	return e
}

func (e Executor) Execute(ctx context.Context, policy Policy) (Result, error) {
	if policy.PurgePolicy() != PurgePolicyDelete {
		return Result{}, fmt.Errorf("%w: %q", errUnsupportedPurgePolicy, policy.PurgePolicy())
	}

	criteria := policy.SelectionCriteria()

	hosts, err := e.store.PurgeHostStates(ctx, criteria.ClusterID, criteria.AfterDate)
	if err != nil {
		return Result{}, fmt.Errorf("failed to purge hosts: %w", err)
	}

	cluster, err := e.store.PurgeClusterState(ctx, criteria.ClusterID, criteria.AfterDate)
	if err != nil {
		return Result{Hosts: hosts}, fmt.Errorf("failed to purge cluster: %w", err)
	}

	ret := Result{Hosts: hosts, Cluster: cluster}

	if e.logger != nil {
		e.logger.V(1).Info("Cleanup done", "policy", policy.String(), "hosts", ret.Hosts, "cluster", ret.Cluster)
	}

	return ret, nil
}

package cleanup

import (
	"errors"
	"fmt"
	"time"
)

var errMissingClusterID = errors.New("missing cluster id")

// PurgePolicy is what the executor does with the selected records.
type PurgePolicy string

const PurgePolicyDelete PurgePolicy = "DELETE"

// SelectionCriteria selects the records of one cluster older than AfterDate.
type SelectionCriteria struct {
	AfterDate time.Time `json:"afterDate"`
	ClusterID string    `json:"clusterId"`
}

// Map is the backend agnostic form, criterion name to value.
func (c SelectionCriteria) Map() map[string]interface{} {
	return map[string]interface{}{
		"afterDate": c.AfterDate,
		"clusterId": c.ClusterID,
	}
}

// Policy is immutable once built.
type Policy struct {
	criteria SelectionCriteria
	purge    PurgePolicy
}

// TimeBasedDeletePolicy deletes everything recorded for clusterID before
// afterDate.
func TimeBasedDeletePolicy(afterDate time.Time, clusterID string) (Policy, error) {
	if clusterID == "" {
		return Policy{}, errMissingClusterID
	}

	return Policy{
		criteria: SelectionCriteria{
			AfterDate: afterDate,
			ClusterID: clusterID,
		},
		purge: PurgePolicyDelete,
	}, nil
}

func (p Policy) SelectionCriteria() SelectionCriteria {
	return p.criteria
}

func (p Policy) PurgePolicy() PurgePolicy {
	return p.purge
}

func (p Policy) String() string {
	return fmt.Sprintf("%s %s before %s", p.purge, p.criteria.ClusterID, p.criteria.AfterDate.UTC().Format(time.RFC3339))
}

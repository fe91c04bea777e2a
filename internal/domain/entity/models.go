package entity

import (
	"time"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

// Ingest

type Event struct {
	Name     string                 `json:"name"`
	Payload  map[string]interface{} `json:"payload"`
	Metadata map[string]interface{} `json:"metadata"`
}

// State

type ClusterState struct {
	ClusterID string
	UpdatedAt time.Time
	Payload   map[string]interface{}
	Metadata  map[string]interface{}
}

type HostState struct {
	ClusterID string
	HostID    string
	UpdatedAt time.Time
	Payload   map[string]interface{}
	Metadata  map[string]interface{}
}

// Catalog

type StackService struct {
	StackName    string
	StackVersion string

	Name                     string
	DisplayName              string
	Comments                 string
	Version                  string
	ServiceType              string
	UserName                 string
	RequiredServices         []string
	ConfigTypes              map[string]map[string]string
	Properties               map[string]string
	Selection                string
	CredentialStoreSupported *bool

	Components []StackServiceComponent
}

type StackServiceComponent struct {
	StackName    string
	StackVersion string
	ServiceName  string

	Name           string
	DisplayName    string
	Category       string
	Cardinality    string
	CustomCommands []string
}

const (
	ComponentCategoryMaster = "MASTER"
	ComponentCategorySlave  = "SLAVE"
	ComponentCategoryClient = "CLIENT"
)

// Export

type Snapshot struct {
	Type      resource.Type
	Timestamp time.Time
	Resources []resource.Resource
}

// DeadLetter is an ingest message that could not be processed.
type DeadLetter struct {
	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
	Payload   []byte

	Category string
	Reason   string
}

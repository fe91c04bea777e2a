package resource

const (
	StackService          Type = "StackService"
	StackServiceComponent Type = "StackServiceComponent"
	Cluster               Type = "Cluster"
	Host                  Type = "Host"
)

const (
	CategoryStackServices          = "StackServices"
	CategoryStackServiceComponents = "StackServiceComponents"
	CategoryClusters               = "Clusters"
	CategoryHosts                  = "Hosts"
)

// StackService properties
var (
	StackServiceStackName                = NewPropertyID(CategoryStackServices, "stack_name")
	StackServiceStackVersion             = NewPropertyID(CategoryStackServices, "stack_version")
	StackServiceServiceName              = NewPropertyID(CategoryStackServices, "service_name")
	StackServiceDisplayName              = NewPropertyID(CategoryStackServices, "display_name")
	StackServiceComments                 = NewPropertyID(CategoryStackServices, "comments")
	StackServiceServiceVersion           = NewPropertyID(CategoryStackServices, "service_version")
	StackServiceServiceType              = NewPropertyID(CategoryStackServices, "service_type")
	StackServiceUserName                 = NewPropertyID(CategoryStackServices, "user_name")
	StackServiceRequiredServices         = NewPropertyID(CategoryStackServices, "required_services")
	StackServiceConfigTypes              = NewPropertyID(CategoryStackServices, "config_types")
	StackServiceProperties               = NewPropertyID(CategoryStackServices, "properties")
	StackServiceSelection                = NewPropertyID(CategoryStackServices, "selection")
	StackServiceCredentialStoreSupported = NewPropertyID(CategoryStackServices, "credential_store_supported")
)

// StackServiceComponent properties
var (
	ComponentStackName      = NewPropertyID(CategoryStackServiceComponents, "stack_name")
	ComponentStackVersion   = NewPropertyID(CategoryStackServiceComponents, "stack_version")
	ComponentServiceName    = NewPropertyID(CategoryStackServiceComponents, "service_name")
	ComponentComponentName  = NewPropertyID(CategoryStackServiceComponents, "component_name")
	ComponentDisplayName    = NewPropertyID(CategoryStackServiceComponents, "display_name")
	ComponentCategory       = NewPropertyID(CategoryStackServiceComponents, "component_category")
	ComponentCardinality    = NewPropertyID(CategoryStackServiceComponents, "cardinality")
	ComponentIsMaster       = NewPropertyID(CategoryStackServiceComponents, "is_master")
	ComponentIsClient       = NewPropertyID(CategoryStackServiceComponents, "is_client")
	ComponentCustomCommands = NewPropertyID(CategoryStackServiceComponents, "custom_commands")
)

// Cluster properties
var (
	ClusterID                = NewPropertyID(CategoryClusters, "cluster_id")
	ClusterName              = NewPropertyID(CategoryClusters, "cluster_name")
	ClusterVersion           = NewPropertyID(CategoryClusters, "version")
	ClusterProvisioningState = NewPropertyID(CategoryClusters, "provisioning_state")
	ClusterSecurityType      = NewPropertyID(CategoryClusters, "security_type")
	ClusterTotalHosts        = NewPropertyID(CategoryClusters, "total_hosts")
	ClusterDesiredConfigs    = NewPropertyID(CategoryClusters, "desired_configs")
	ClusterHealthReport      = NewPropertyID(CategoryClusters, "health_report")
)

// Host properties
var (
	HostClusterID         = NewPropertyID(CategoryHosts, "cluster_id")
	HostID                = NewPropertyID(CategoryHosts, "host_id")
	HostName              = NewPropertyID(CategoryHosts, "host_name")
	HostIP                = NewPropertyID(CategoryHosts, "ip")
	HostOSType            = NewPropertyID(CategoryHosts, "os_type")
	HostCPUCount          = NewPropertyID(CategoryHosts, "cpu_count")
	HostTotalMem          = NewPropertyID(CategoryHosts, "total_mem")
	HostStatus            = NewPropertyID(CategoryHosts, "host_status")
	HostState             = NewPropertyID(CategoryHosts, "host_state")
	HostLastHeartbeatTime = NewPropertyID(CategoryHosts, "last_heartbeat_time")
	HostMaintenanceState  = NewPropertyID(CategoryHosts, "maintenance_state")
	HostRackInfo          = NewPropertyID(CategoryHosts, "rack_info")
)

var schemas = map[Type]Schema{
	StackService: mustSchema(StackService,
		[]PropertyID{StackServiceStackName, StackServiceStackVersion, StackServiceServiceName},
		StackServiceDisplayName,
		StackServiceComments,
		StackServiceServiceVersion,
		StackServiceServiceType,
		StackServiceUserName,
		StackServiceRequiredServices,
		StackServiceConfigTypes,
		StackServiceProperties,
		StackServiceSelection,
		StackServiceCredentialStoreSupported,
	),
	StackServiceComponent: mustSchema(StackServiceComponent,
		[]PropertyID{ComponentStackName, ComponentStackVersion, ComponentServiceName, ComponentComponentName},
		ComponentDisplayName,
		ComponentCategory,
		ComponentCardinality,
		ComponentIsMaster,
		ComponentIsClient,
		ComponentCustomCommands,
	),
	Cluster: mustSchema(Cluster,
		[]PropertyID{ClusterID},
		ClusterName,
		ClusterVersion,
		ClusterProvisioningState,
		ClusterSecurityType,
		ClusterTotalHosts,
		ClusterDesiredConfigs,
		ClusterHealthReport,
	),
	Host: mustSchema(Host,
		[]PropertyID{HostClusterID, HostID},
		HostName,
		HostIP,
		HostOSType,
		HostCPUCount,
		HostTotalMem,
		HostStatus,
		HostState,
		HostLastHeartbeatTime,
		HostMaintenanceState,
		HostRackInfo,
	),
}

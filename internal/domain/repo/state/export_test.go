package state

// Steps of the purge, to rewrite a state between the read and the delete.
var (
	StaleHostStates        = ValkeyRepo.staleHostStates
	DeleteUnchangedHosts   = ValkeyRepo.deleteUnchangedHosts
	DeleteUnchangedCluster = ValkeyRepo.deleteUnchangedCluster
)

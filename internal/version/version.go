package version

import (
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/common/version"
)

const program = "cluster_resources"

// Set at build time with -ldflags "-X github.com/prometheus/common/version.Revision=...".
var (
	Branch   = version.Branch
	Revision = version.Revision
	Version  = version.Version
)

// Info is the one-line build description printed at startup.
func Info() string {
	return version.Info()
}

// NewCollector exposes the build information as <namespace>_build_info.
func NewCollector() prometheus.Collector {
	return versioncollector.NewCollector(program)
}

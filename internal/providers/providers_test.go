package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/mock"
	"github.com/openshift-assisted/cluster-resources/internal/providers"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

// Helper

var errBackend = errors.New("backend is down")

func pointer[T any](obj T) *T {
	return &obj
}

func property(res resource.Resource, id resource.PropertyID) resource.Value {
	ret, ok := res.Property(id)
	Expect(ok).To(BeTrue(), "property %s should be present on %s", id, res)

	return ret
}

func hdfs() entity.StackService {
	return entity.StackService{
		StackName:        "HDP",
		StackVersion:     "2.0.6",
		Name:             "HDFS",
		DisplayName:      "HDFS",
		RequiredServices: []string{"ZOOKEEPER"},
		ConfigTypes: map[string]map[string]string{
			"hdfs-site": {"supports_final": "true"},
		},
		Properties: map[string]string{"P1": "V1", "P2": "V2"},
	}
}

func zookeeper() entity.StackService {
	return entity.StackService{
		StackName:                "HDP",
		StackVersion:             "2.0.6",
		Name:                     "ZOOKEEPER",
		Selection:                "MANDATORY",
		CredentialStoreSupported: pointer(true),
		Properties: map[string]string{
			"managed": "false",
		},
	}
}

func hostState(clusterID, hostID, status string) entity.HostState {
	return entity.HostState{
		ClusterID: clusterID,
		HostID:    hostID,
		Payload: map[string]interface{}{
			"requested_hostname": "host-" + hostID,
			"status":             status,
			"checked_in_at":      "2024-11-21T02:57:38.485Z",
			"host_inventory": map[string]interface{}{
				"hostname": "inventory-" + hostID,
				"cpu":      map[string]interface{}{"count": json.Number("8")},
				"memory":   map[string]interface{}{"physical_bytes": json.Number("17179869184")},
				"interfaces": []interface{}{
					map[string]interface{}{"ipv4_addresses": []interface{}{"192.168.1.10/24"}},
				},
				"operating_system": map[string]interface{}{"name": "rhcos"},
			},
		},
	}
}

// Test

func TestProviders(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Providers test suite")
}

var _ = Describe("Testing the provider table", func() {
	var ctrl *gomock.Controller
	var deps providers.Dependencies

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		deps = providers.Dependencies{
			Catalog:  mock.NewMockStackCatalog(ctrl),
			Clusters: mock.NewMockClusterStateReader(ctrl),
			Hosts:    mock.NewMockHostStateReader(ctrl),
			Logger:   logr.Discard(),
		}
	})

	It("should cover every declared type", func() {
		Expect(providers.Registry().Validate()).To(Succeed())
	})

	It("should resolve one provider per type", func() {
		all, err := providers.Registry().ResolveAll(deps)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(len(resource.Types())))

		for _, t := range resource.Types() {
			p, err := all.Get(t)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Type()).To(Equal(t))
		}
	})

	When("a backend is missing", func() {
		BeforeEach(func() {
			deps.Hosts = nil
		})

		It("should fail to resolve the providers needing it", func() {
			_, err := providers.Registry().Resolve(resource.Host, deps)
			Expect(err).To(HaveOccurred())

			_, err = providers.Registry().Resolve(resource.StackService, deps)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("Testing the stack service provider", func() {
	var ctrl *gomock.Controller
	var catalog *mock.MockStackCatalog
	var p provider.ResourceProvider

	BeforeEach(func() {
		var err error

		ctrl = gomock.NewController(GinkgoT())
		catalog = mock.NewMockStackCatalog(ctrl)

		p, err = providers.NewStackServiceProvider(providers.Dependencies{Catalog: catalog})
		Expect(err).NotTo(HaveOccurred())
	})

	When("only the service properties are wanted", func() {
		BeforeEach(func() {
			catalog.EXPECT().GetStackServices(gomock.Any()).Return([]entity.StackService{hdfs()}, nil).Times(1)
		})

		It("should add the default entries without overwriting the catalog ones", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.StackServiceProperties))
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))
			Expect(ret[0].PropertyIDs()).To(Equal([]resource.PropertyID{resource.StackServiceProperties}))

			expected := resource.StringMapValue(map[string]string{
				"P1":          "V1",
				"P2":          "V2",
				"installable": "true",
				"managed":     "true",
				"monitored":   "true",
			})
			Expect(property(ret[0], resource.StackServiceProperties).Equal(expected)).To(BeTrue())
		})
	})

	When("every property is wanted", func() {
		BeforeEach(func() {
			catalog.EXPECT().GetStackServices(gomock.Any()).Return([]entity.StackService{zookeeper(), hdfs()}, nil).Times(1)
		})

		It("should project every service sorted and apply the defaults", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(2))

			hdfsRes, zkRes := ret[0], ret[1]

			Expect(property(hdfsRes, resource.StackServiceServiceName).String()).To(Equal("HDFS"))
			Expect(property(hdfsRes, resource.StackServiceSelection).String()).To(Equal("DEFAULT"))
			Expect(property(hdfsRes, resource.StackServiceCredentialStoreSupported).Equal(resource.BoolValue(false))).To(BeTrue())
			Expect(property(hdfsRes, resource.StackServiceRequiredServices).Equal(resource.StringListValue([]string{"ZOOKEEPER"}))).To(BeTrue())
			Expect(hdfsRes.Has(resource.StackServiceComments)).To(BeFalse())

			configTypes, ok := property(hdfsRes, resource.StackServiceConfigTypes).Entry("hdfs-site")
			Expect(ok).To(BeTrue())
			Expect(configTypes.Equal(resource.StringMapValue(map[string]string{"supports_final": "true"}))).To(BeTrue())

			Expect(property(zkRes, resource.StackServiceSelection).String()).To(Equal("MANDATORY"))
			Expect(property(zkRes, resource.StackServiceCredentialStoreSupported).Equal(resource.BoolValue(true))).To(BeTrue())

			managed, ok := property(zkRes, resource.StackServiceProperties).Entry("managed")
			Expect(ok).To(BeTrue())
			Expect(managed.String()).To(Equal("false"))
		})
	})

	When("an unknown property is wanted", func() {
		It("should fail before querying the catalog", func(ctx SpecContext) {
			catalog.EXPECT().GetStackServices(gomock.Any()).Times(0)

			_, err := p.GetResources(ctx, resource.NewReadRequest(resource.NewPropertyID(resource.CategoryStackServices, "colour")))
			Expect(err).To(MatchError(resource.ErrUnknownProperty))
		})
	})

	When("the catalog fails", func() {
		BeforeEach(func() {
			catalog.EXPECT().GetStackServices(gomock.Any()).Return(nil, errBackend).Times(1)
		})

		It("should report the backend as unavailable", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest())
			Expect(err).To(MatchError(resource.ErrBackendUnavailable))
			Expect(err).To(MatchError(errBackend))
			Expect(ret).To(BeNil())
		})
	})
})

var _ = Describe("Testing the component provider", func() {
	var ctrl *gomock.Controller
	var catalog *mock.MockStackCatalog
	var p provider.ResourceProvider

	BeforeEach(func() {
		var err error

		ctrl = gomock.NewController(GinkgoT())
		catalog = mock.NewMockStackCatalog(ctrl)

		p, err = providers.NewComponentProvider(providers.Dependencies{Catalog: catalog})
		Expect(err).NotTo(HaveOccurred())

		catalog.EXPECT().GetStackServiceComponents(gomock.Any()).Return([]entity.StackServiceComponent{
			{StackName: "HDP", StackVersion: "2.0.6", ServiceName: "HDFS", Name: "NAMENODE", Category: entity.ComponentCategoryMaster, Cardinality: "1-2"},
			{StackName: "HDP", StackVersion: "2.0.6", ServiceName: "HDFS", Name: "HDFS_CLIENT", Category: entity.ComponentCategoryClient},
		}, nil).Times(1)
	})

	It("should derive the category flags", func(ctx SpecContext) {
		ret, err := p.GetResources(ctx, resource.NewReadRequest().WithCategories(resource.CategoryStackServiceComponents))
		Expect(err).NotTo(HaveOccurred())
		Expect(ret).To(HaveLen(2))

		client, master := ret[0], ret[1]

		Expect(property(master, resource.ComponentIsMaster).Equal(resource.BoolValue(true))).To(BeTrue())
		Expect(property(master, resource.ComponentIsClient).Equal(resource.BoolValue(false))).To(BeTrue())
		Expect(property(master, resource.ComponentCardinality).String()).To(Equal("1-2"))

		Expect(property(client, resource.ComponentIsClient).Equal(resource.BoolValue(true))).To(BeTrue())
		Expect(property(client, resource.ComponentCardinality).String()).To(Equal("0+"))
	})
})

var _ = Describe("Testing the cluster provider", func() {
	var ctrl *gomock.Controller
	var clusters *mock.MockClusterStateReader
	var hosts *mock.MockHostStateReader
	var p provider.ResourceProvider

	BeforeEach(func() {
		var err error

		ctrl = gomock.NewController(GinkgoT())
		clusters = mock.NewMockClusterStateReader(ctrl)
		hosts = mock.NewMockHostStateReader(ctrl)

		p, err = providers.NewClusterProvider(providers.Dependencies{Clusters: clusters, Hosts: hosts})
		Expect(err).NotTo(HaveOccurred())

		clusters.EXPECT().GetClusterStates(gomock.Any()).Return([]entity.ClusterState{
			{
				ClusterID: "c1",
				Payload: map[string]interface{}{
					"name":              "my-cluster",
					"openshift_version": "4.17",
					"desired_configs":   map[string]interface{}{"core-site": map[string]interface{}{"tag": "v1"}},
				},
			},
		}, nil).Times(1)
	})

	When("the host derived properties are not wanted", func() {
		It("should not query the host store", func(ctx SpecContext) {
			hosts.EXPECT().GetHostStates(gomock.Any(), gomock.Any()).Times(0)

			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.ClusterName, resource.ClusterSecurityType))
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))
			Expect(ret[0].Len()).To(Equal(2))
			Expect(property(ret[0], resource.ClusterName).String()).To(Equal("my-cluster"))
			Expect(property(ret[0], resource.ClusterSecurityType).String()).To(Equal("NONE"))
		})
	})

	When("the host derived properties are wanted", func() {
		BeforeEach(func() {
			hosts.EXPECT().GetHostStates(gomock.Any(), "c1").Return([]entity.HostState{
				hostState("c1", "h1", "known"),
				hostState("c1", "h2", "disconnected"),
				hostState("c1", "h3", "discovering"),
			}, nil).Times(1)
		})

		It("should count the hosts of the cluster", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.ClusterTotalHosts, resource.ClusterHealthReport))
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))

			Expect(property(ret[0], resource.ClusterTotalHosts).Equal(resource.IntValue(3))).To(BeTrue())

			report := property(ret[0], resource.ClusterHealthReport)
			for key, count := range map[string]int64{
				"Host/host_status/HEALTHY":   1,
				"Host/host_status/UNHEALTHY": 1,
				"Host/host_status/UNKNOWN":   1,
				"Host/maintenance_state":     0,
			} {
				value, ok := report.Entry(key)
				Expect(ok).To(BeTrue(), key)
				Expect(value.Equal(resource.IntValue(count))).To(BeTrue(), key)
			}
		})
	})

	When("the host store fails", func() {
		BeforeEach(func() {
			hosts.EXPECT().GetHostStates(gomock.Any(), "c1").Return(nil, errBackend).Times(1)
		})

		It("should drop the host count only", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.ClusterID, resource.ClusterTotalHosts))
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))
			Expect(ret[0].PropertyIDs()).To(Equal([]resource.PropertyID{resource.ClusterID}))
		})

		It("should drop both host derived properties after one lookup", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.ClusterID, resource.ClusterTotalHosts, resource.ClusterHealthReport))
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))
			Expect(ret[0].PropertyIDs()).To(Equal([]resource.PropertyID{resource.ClusterID}))
		})
	})
})

var _ = Describe("Testing the host provider", func() {
	var ctrl *gomock.Controller
	var hosts *mock.MockHostStateReader
	var p provider.ResourceProvider

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		hosts = mock.NewMockHostStateReader(ctrl)
	})

	Context("with the default failure policy", func() {
		BeforeEach(func() {
			var err error

			p, err = providers.NewHostProvider(providers.Dependencies{Hosts: hosts})
			Expect(err).NotTo(HaveOccurred())

			hosts.EXPECT().ListHostStates(gomock.Any()).Return([]entity.HostState{
				hostState("c1", "h1", "known"),
				hostState("c1", "", "known"),
			}, nil).Times(1)
		})

		It("should map the payload and skip hosts without id", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(HaveLen(1))

			host := ret[0]
			Expect(host.Identity()).To(Equal("Hosts/cluster_id=c1,Hosts/host_id=h1"))
			Expect(property(host, resource.HostName).String()).To(Equal("host-h1"))
			Expect(property(host, resource.HostIP).String()).To(Equal("192.168.1.10"))
			Expect(property(host, resource.HostOSType).String()).To(Equal("rhcos"))
			Expect(property(host, resource.HostCPUCount).Equal(resource.IntValue(8))).To(BeTrue())
			Expect(property(host, resource.HostTotalMem).Equal(resource.IntValue(17179869184))).To(BeTrue())
			Expect(property(host, resource.HostState).String()).To(Equal("known"))
			Expect(property(host, resource.HostStatus).String()).To(Equal("HEALTHY"))
			Expect(property(host, resource.HostLastHeartbeatTime).String()).To(Equal("2024-11-21T02:57:38.485Z"))
			Expect(property(host, resource.HostMaintenanceState).String()).To(Equal("OFF"))
			Expect(property(host, resource.HostRackInfo).String()).To(Equal("/default-rack"))
		})
	})

	Context("with the abort failure policy", func() {
		BeforeEach(func() {
			var err error

			p, err = providers.NewHostProvider(providers.Dependencies{Hosts: hosts, FailurePolicy: provider.FailurePolicyAbort})
			Expect(err).NotTo(HaveOccurred())

			hosts.EXPECT().ListHostStates(gomock.Any()).Return([]entity.HostState{
				hostState("c1", "h1", "known"),
				hostState("c1", "", "known"),
			}, nil).Times(1)
		})

		It("should fail the whole call", func(ctx SpecContext) {
			ret, err := p.GetResources(ctx, resource.NewReadRequest(resource.HostName))
			Expect(err).To(MatchError(resource.ErrPropertyComputationFailed))
			Expect(ret).To(BeNil())
		})
	})

	When("the host store reports a retryable failure", func() {
		BeforeEach(func() {
			var err error

			p, err = providers.NewHostProvider(providers.Dependencies{Hosts: hosts})
			Expect(err).NotTo(HaveOccurred())

			hosts.EXPECT().ListHostStates(gomock.Any()).Return(nil, provider.NewErrRetryableError(errBackend)).Times(1)
		})

		It("should keep the failure retryable", func() {
			_, err := p.GetResources(context.TODO(), resource.NewReadRequest())
			Expect(err).To(MatchError(resource.ErrBackendUnavailable))
			Expect(err).To(MatchError(provider.ErrRetryableError))
		})
	})
})

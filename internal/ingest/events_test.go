package ingest_test

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/mock"
	"github.com/openshift-assisted/cluster-resources/internal/ingest"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

var _ = Describe("Event processing", func() {
	var clusters *mock.MockClusterStateWriter
	var hosts *mock.MockHostStateWriter
	var main ingest.Main

	now := time.Date(2025, 3, 3, 15, 9, 54, 0, time.UTC)

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		clusters = mock.NewMockClusterStateWriter(ctrl)
		hosts = mock.NewMockHostStateWriter(ctrl)

		main = ingest.NewMain(clusters, hosts, clockwork.NewFakeClockAt(now))
	})

	expectCategory := func(err error, category string) {
		processingError := ingest.ErrProcessingError{}
		ExpectWithOffset(1, errors.As(err, &processingError)).To(BeTrue())
		ExpectWithOffset(1, processingError.Category).To(Equal(category))
	}

	When("the event name is unknown", func() {
		It("fails without writing", func(ctx SpecContext) {
			err := main.Process(ctx, entity.Event{Name: "InfraEnv"})
			Expect(err).To(HaveOccurred())
			expectCategory(err, "unknown_name")
		})
	})

	When("a host state is received", func() {
		It("stores the host with a parsed inventory", func(ctx SpecContext) {
			var stored entity.HostState

			hosts.EXPECT().WriteHostState(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, state entity.HostState) error {
					stored = state

					return nil
				}).Times(1)

			err := main.Process(ctx, entity.Event{
				Name: ingest.EventNameHostState,
				Payload: map[string]interface{}{
					"id":             "h1",
					"cluster_id":     "c1",
					"user_name":      "admin",
					"inventory":      `{"hostname":"worker-1","cpu":{"count":4}}`,
					"free_addresses": "[...]",
					"updated_at":     "2024-11-21T02:57:38.485Z",
				},
				Metadata: map[string]interface{}{"versions": "v1"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(stored.ClusterID).To(Equal("c1"))
			Expect(stored.HostID).To(Equal("h1"))
			Expect(stored.UpdatedAt).To(Equal(time.Date(2024, 11, 21, 2, 57, 38, 485000000, time.UTC)))
			Expect(stored.Metadata).To(HaveKeyWithValue("versions", "v1"))
			Expect(stored.Payload).NotTo(HaveKey("inventory"))
			Expect(stored.Payload).NotTo(HaveKey("free_addresses"))
			Expect(stored.Payload).NotTo(HaveKey("user_name"))
			Expect(stored.Payload).To(HaveKeyWithValue("user_id", "21232f297a57a5a743894a0e4a801fc3"))
			Expect(stored.Payload["host_inventory"]).To(HaveKeyWithValue("hostname", "worker-1"))
		})

		It("uses the reception time without updated_at", func(ctx SpecContext) {
			hosts.EXPECT().WriteHostState(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, state entity.HostState) error {
					Expect(state.UpdatedAt).To(Equal(now))

					return nil
				}).Times(1)

			err := main.Process(ctx, entity.Event{
				Name:    ingest.EventNameHostState,
				Payload: map[string]interface{}{"id": "h1", "cluster_id": "c1"},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("rejects invalid payloads",
			func(ctx SpecContext, payload map[string]interface{}) {
				hosts.EXPECT().WriteHostState(gomock.Any(), gomock.Any()).Times(0)

				err := main.Process(ctx, entity.Event{Name: ingest.EventNameHostState, Payload: payload})
				Expect(err).To(HaveOccurred())
				expectCategory(err, "invalid_host_state")
			},
			Entry("missing cluster_id", map[string]interface{}{"id": "h1"}),
			Entry("empty id", map[string]interface{}{"id": "", "cluster_id": "c1"}),
			Entry("inventory not json", map[string]interface{}{"id": "h1", "cluster_id": "c1", "inventory": "{"}),
			Entry("inventory of wrong type", map[string]interface{}{"id": "h1", "cluster_id": "c1", "inventory": 12}),
			Entry("invalid updated_at", map[string]interface{}{"id": "h1", "cluster_id": "c1", "updated_at": "yesterday"}),
		)

		It("keeps a retryable store failure retryable", func(ctx SpecContext) {
			hosts.EXPECT().WriteHostState(gomock.Any(), gomock.Any()).
				Return(common.NewRetryableError(errors.New("timeout"), "failed to write")).Times(1)

			err := main.Process(ctx, entity.Event{
				Name:    ingest.EventNameHostState,
				Payload: map[string]interface{}{"id": "h1", "cluster_id": "c1"},
			})
			Expect(err).To(MatchError(provider.ErrRetryableError))
			expectCategory(err, "state_writer")
		})
	})

	When("a cluster state is received", func() {
		It("stores the cluster without its hosts", func(ctx SpecContext) {
			clusters.EXPECT().WriteClusterState(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, state entity.ClusterState) error {
					Expect(state.ClusterID).To(Equal("c1"))
					Expect(state.Payload).To(HaveKeyWithValue("name", "prod"))
					Expect(state.Payload).NotTo(HaveKey("hosts"))

					return nil
				}).Times(1)

			err := main.Process(ctx, entity.Event{
				Name: ingest.EventNameClusterState,
				Payload: map[string]interface{}{
					"id":    "c1",
					"name":  "prod",
					"hosts": []interface{}{map[string]interface{}{"id": "h1"}},
				},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("requires an id", func(ctx SpecContext) {
			clusters.EXPECT().WriteClusterState(gomock.Any(), gomock.Any()).Times(0)

			err := main.Process(ctx, entity.Event{
				Name:    ingest.EventNameClusterState,
				Payload: map[string]interface{}{"name": "prod"},
			})
			expectCategory(err, "invalid_cluster_state")
		})
	})
})

package node

import (
	"context"
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

const (
	zoneLabel = "topology.kubernetes.io/zone"

	statusKnown        = "known"
	statusDisconnected = "disconnected"
)

// KubernetesRepo exposes the nodes of the cluster it runs against as the host
// states of one configured cluster.
type KubernetesRepo struct {
	client    kubernetes.Interface
	clusterID string
	selector  string
}

func NewKubernetesRepo(client kubernetes.Interface, clusterID string, labelSelector string) KubernetesRepo {
	return KubernetesRepo{
		client:    client,
		clusterID: clusterID,
		selector:  labelSelector,
	}
}

func (r KubernetesRepo) GetHostStates(ctx context.Context, clusterID string) ([]entity.HostState, error) {
	if clusterID != r.clusterID {
		return []entity.HostState{}, nil
	}

	return r.ListHostStates(ctx)
}

func (r KubernetesRepo) ListHostStates(ctx context.Context) ([]entity.HostState, error) {
	nodes, err := r.client.CoreV1().Nodes().List(ctx, metav1.ListOptions{LabelSelector: r.selector})
	if err != nil {
		if isRetryable(err) {
			return nil, common.NewRetryableError(err, "failed to list nodes")
		}

		return nil, common.NewError(err, "failed to list nodes")
	}

	ret := make([]entity.HostState, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		ret = append(ret, mapToEntity(r.clusterID, node))
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].HostID < ret[j].HostID
	})

	return ret, nil
}

func isRetryable(err error) bool {
	return apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsInternalError(err)
}

// mapToEntity builds the same payload shape as the ingested host events.
func mapToEntity(clusterID string, node corev1.Node) entity.HostState {
	payload := map[string]interface{}{
		"id":                 string(node.UID),
		"cluster_id":         clusterID,
		"requested_hostname": node.Name,
		"status":             statusDisconnected,
		"host_inventory":     inventory(node),
	}

	for _, condition := range node.Status.Conditions {
		if condition.Type != corev1.NodeReady {
			continue
		}

		if condition.Status == corev1.ConditionTrue {
			payload["status"] = statusKnown
		}

		if !condition.LastHeartbeatTime.IsZero() {
			payload["checked_in_at"] = condition.LastHeartbeatTime.UTC().Format(time.RFC3339)
		}
	}

	if node.Spec.Unschedulable {
		payload["maintenance_state"] = "ON"
	}

	zone, ok := node.Labels[zoneLabel]
	if ok && zone != "" {
		payload["rack"] = "/" + zone
	}

	return entity.HostState{
		ClusterID: clusterID,
		HostID:    string(node.UID),
		Payload:   payload,
		Metadata: map[string]interface{}{
			"source": "kubernetes",
		},
	}
}

func inventory(node corev1.Node) map[string]interface{} {
	addresses := []interface{}{}

	for _, address := range node.Status.Addresses {
		if address.Type == corev1.NodeInternalIP {
			addresses = append(addresses, address.Address)
		}
	}

	ret := map[string]interface{}{
		"hostname": node.Name,
		"interfaces": []interface{}{
			map[string]interface{}{"ipv4_addresses": addresses},
		},
		"operating_system": map[string]interface{}{
			"name": node.Status.NodeInfo.OSImage,
		},
	}

	cpu, ok := node.Status.Capacity[corev1.ResourceCPU]
	if ok {
		ret["cpu"] = map[string]interface{}{"count": cpu.Value()}
	}

	memory, ok := node.Status.Capacity[corev1.ResourceMemory]
	if ok {
		ret["memory"] = map[string]interface{}{"physical_bytes": memory.Value()}
	}

	return ret
}

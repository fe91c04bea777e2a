package factory

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/openshift-assisted/cluster-resources/internal/config"
)

// CreateKubernetesClient uses the kubeconfig when set, the in-cluster
// service account otherwise.
func CreateKubernetesClient(conf config.Kubernetes) (kubernetes.Interface, error) {
	var (
		restConfig *rest.Config
		err        error
	)

	if conf.Kubeconfig != "" {
		restConfig, err = clientcmd.BuildConfigFromFlags("", conf.Kubeconfig)
	} else {
		restConfig, err = rest.InClusterConfig()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load kubernetes config: %w", err)
	}

	ret, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return ret, nil
}

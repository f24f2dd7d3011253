package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

var (
	clientOnce   sync.Once
	cachedClient kubernetes.Interface
	clientErr    error
)

// GetKubeClient returns a process-wide client, building it on first use.
//
// Configuration is discovered from, in order:
//   - the KUBECONFIG environment variable
//   - ~/.kube/config
//   - the in-cluster service account
func GetKubeClient() (kubernetes.Interface, error) {
	clientOnce.Do(func() {
		cachedClient, clientErr = BuildKubeClient("")
	})
	return cachedClient, clientErr
}

// BuildKubeClient creates a client from the given kubeconfig path, bypassing
// the shared instance. An empty path uses the same discovery as GetKubeClient.
func BuildKubeClient(kubeconfig string) (kubernetes.Interface, error) {
	if kubeconfig == "" {
		kubeconfig = discoverKubeconfig()
	}

	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config: %w", err)
	}

	c, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return c, nil
}

func discoverKubeconfig() string {
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

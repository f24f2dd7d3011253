package serializer

import "github.com/coapi/validator/pkg/k8s/client"

const (
	// ConfigMapURIScheme selects a ConfigMap destination: cm://namespace/name[/key].
	ConfigMapURIScheme = client.ConfigMapURIScheme

	// StdoutURI is the special destination for standard output.
	StdoutURI = "-"
)

package client

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/coapi/validator/pkg/defaults"
)

// ConfigMapURIScheme prefixes locations that refer to a ConfigMap key:
// cm://namespace/name[/key].
const ConfigMapURIScheme = "cm://"

// IsConfigMapURI reports whether location uses the ConfigMap scheme.
func IsConfigMapURI(location string) bool {
	return strings.HasPrefix(location, ConfigMapURIScheme)
}

// ConfigMapRef addresses one data key of a ConfigMap.
type ConfigMapRef struct {
	Namespace string
	Name      string
	Key       string
}

func (r ConfigMapRef) String() string {
	s := ConfigMapURIScheme + r.Namespace + "/" + r.Name
	if r.Key != "" {
		s += "/" + r.Key
	}
	return s
}

// ParseConfigMapURI splits a cm:// location. When the URI has no key,
// defaultKey is used.
func ParseConfigMapURI(uri, defaultKey string) (ConfigMapRef, error) {
	if !IsConfigMapURI(uri) {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI %q: missing %s prefix", uri, ConfigMapURIScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI %q: expected cm://namespace/name[/key]", uri)
	}

	ref := ConfigMapRef{Namespace: parts[0], Name: parts[1], Key: defaultKey}
	if len(parts) == 3 {
		ref.Key = parts[2]
	}
	if ref.Namespace == "" || ref.Name == "" || ref.Key == "" {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI %q: namespace, name and key must not be empty", uri)
	}
	return ref, nil
}

// ReadConfigMap returns the content stored under ref.Key.
func ReadConfigMap(ctx context.Context, c kubernetes.Interface, ref ConfigMapRef) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
	defer cancel()

	cm, err := c.CoreV1().ConfigMaps(ref.Namespace).Get(ctx, ref.Name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", ref.Namespace, ref.Name, err)
	}

	if data, ok := cm.Data[ref.Key]; ok {
		return []byte(data), nil
	}
	if data, ok := cm.BinaryData[ref.Key]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("ConfigMap %s/%s has no key %q", ref.Namespace, ref.Name, ref.Key)
}

// WriteConfigMap stores data under ref.Key, creating the ConfigMap when it
// does not exist. Other keys of an existing ConfigMap are preserved.
func WriteConfigMap(ctx context.Context, c kubernetes.Interface, ref ConfigMapRef, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
	defer cancel()

	cms := c.CoreV1().ConfigMaps(ref.Namespace)

	existing, err := cms.Get(ctx, ref.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      ref.Name,
				Namespace: ref.Namespace,
				Labels: map[string]string{
					"app.kubernetes.io/managed-by": "coapi-validator",
				},
			},
			Data: map[string]string{ref.Key: string(data)},
		}
		if _, err := cms.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s/%s: %w", ref.Namespace, ref.Name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get ConfigMap %s/%s: %w", ref.Namespace, ref.Name, err)
	}

	if existing.Data == nil {
		existing.Data = make(map[string]string)
	}
	existing.Data[ref.Key] = string(data)
	if _, err := cms.Update(ctx, existing, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update ConfigMap %s/%s: %w", ref.Namespace, ref.Name, err)
	}
	return nil
}

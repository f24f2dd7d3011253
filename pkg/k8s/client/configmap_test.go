package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    ConfigMapRef
		wantErr bool
	}{
		{"default key", "cm://ns/grammar", ConfigMapRef{"ns", "grammar", "grammar.yaml"}, false},
		{"explicit key", "cm://ns/grammar/openapi.yaml", ConfigMapRef{"ns", "grammar", "openapi.yaml"}, false},
		{"missing name", "cm://namespace", ConfigMapRef{}, true},
		{"missing namespace", "cm:///name", ConfigMapRef{}, true},
		{"empty", "cm://", ConfigMapRef{}, true},
		{"empty key", "cm://ns/name/", ConfigMapRef{}, true},
		{"too many parts", "cm://ns/name/key/extra", ConfigMapRef{}, true},
		{"wrong scheme", "file://ns/name", ConfigMapRef{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigMapURI(tt.uri, "grammar.yaml")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid ConfigMap URI")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigMapRefString(t *testing.T) {
	assert.Equal(t, "cm://ns/name/key", ConfigMapRef{"ns", "name", "key"}.String())
	assert.Equal(t, "cm://ns/name", ConfigMapRef{Namespace: "ns", Name: "name"}.String())
}

func TestReadConfigMap(t *testing.T) {
	c := fake.NewClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "grammar", Namespace: "ns"},
		Data:       map[string]string{"grammar.yaml": "a: 1"},
		BinaryData: map[string][]byte{"bin": []byte("b: 2")},
	})
	ctx := context.Background()

	data, err := ReadConfigMap(ctx, c, ConfigMapRef{"ns", "grammar", "grammar.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "a: 1", string(data))

	data, err = ReadConfigMap(ctx, c, ConfigMapRef{"ns", "grammar", "bin"})
	require.NoError(t, err)
	assert.Equal(t, "b: 2", string(data))

	_, err = ReadConfigMap(ctx, c, ConfigMapRef{"ns", "grammar", "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no key "missing"`)

	_, err = ReadConfigMap(ctx, c, ConfigMapRef{"ns", "absent", "grammar.yaml"})
	require.Error(t, err)
}

func TestWriteConfigMap(t *testing.T) {
	c := fake.NewClientset()
	ctx := context.Background()
	ref := ConfigMapRef{"ns", "report", "report.json"}

	require.NoError(t, WriteConfigMap(ctx, c, ref, []byte(`{"v":1}`)))

	cm, err := c.CoreV1().ConfigMaps("ns").Get(ctx, "report", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, cm.Data["report.json"])
	assert.Equal(t, "coapi-validator", cm.Labels["app.kubernetes.io/managed-by"])

	other := ConfigMapRef{"ns", "report", "other.json"}
	require.NoError(t, WriteConfigMap(ctx, c, other, []byte("x")))
	require.NoError(t, WriteConfigMap(ctx, c, ref, []byte(`{"v":2}`)))

	cm, err = c.CoreV1().ConfigMaps("ns").Get(ctx, "report", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, cm.Data["report.json"])
	assert.Equal(t, "x", cm.Data["other.json"])
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	root, err := buildYAML(t, sampleGrammar)
	require.NoError(t, err)

	s := Summarize(root)
	assert.Equal(t, root.Stats(), s.Stats)
	require.Len(t, s.Fields, 3)

	info := s.Fields[0]
	assert.Equal(t, "info", info.Name)
	assert.Equal(t, "object", info.Type)
	assert.True(t, info.Required)
	assert.Equal(t, "API metadata", info.Description)
	require.Len(t, info.Children, 3)
	assert.Equal(t, "[A-Z].*", info.Children[0].Regex)

	tags := s.Fields[2]
	require.Len(t, tags.Children, 1)
	assert.Equal(t, "item[0-9]+", tags.Children[0].NameRegex)
}

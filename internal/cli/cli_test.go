package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/detab/internal/cli"
)

func TestLines(t *testing.T) {
	t.Parallel()
	lines, err := cli.Lines(strings.NewReader("a\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
}

func TestLinesEmpty(t *testing.T) {
	t.Parallel()
	lines, err := cli.Lines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDecodeTreeJSONKeepsNumberText(t *testing.T) {
	t.Parallel()
	root, err := cli.DecodeTree(strings.NewReader(`{"v": 1.500}`), "json")
	require.NoError(t, err)
	m, ok := root.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1.500"), m["v"])
}

func TestDecodeTreeEmptyInput(t *testing.T) {
	t.Parallel()
	root, err := cli.DecodeTree(strings.NewReader(""), "json")
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestDecodeTreeYAML(t *testing.T) {
	t.Parallel()
	root, err := cli.DecodeTree(strings.NewReader("a:\n  - 1\n  - 2\n"), "yaml")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{1, 2}}, root)
}

func TestDecodeTreeUnknownFormat(t *testing.T) {
	t.Parallel()
	_, err := cli.DecodeTree(strings.NewReader("x"), "toml")
	assert.ErrorContains(t, err, `"toml"`)
}

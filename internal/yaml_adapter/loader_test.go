package yaml_adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/dyegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
namespace: dyes
colors: [maroon, mint]
roles:
  - name: wool
    id: "{color}_wool"
  - name: dye
    id: "dyes/{color}"
    block: false
`)

	model, err := NewLoader().Load(testutil.Context(t), path)
	require.NoError(t, err)

	assert.Equal(t, "dyes", model.Namespace)
	assert.Equal(t, []string{"maroon", "mint"}, model.Colors)

	dye := model.Role("dye")
	require.NotNil(t, dye)
	assert.False(t, dye.Block)
	assert.True(t, dye.Item)
	assert.Equal(t, path, dye.Source)

	got, err := dye.Pattern.Expand("mint")
	require.NoError(t, err)
	assert.Equal(t, "dyes/mint", got)
}

func TestLoad_EmptyFile(t *testing.T) {
	model, err := NewLoader().Load(testutil.Context(t), writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, model.Colors)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown field", content: "colours: [red]\n", wantErr: "field colours not found"},
		{name: "missing placeholder", content: "roles:\n  - name: wool\n    id: wool\n", wantErr: `role "wool": pattern "wool" does not reference {color}`},
		{name: "missing name", content: "roles:\n  - id: \"{color}\"\n", wantErr: "roles[0]: name is required"},
		{name: "duplicate color", content: "colors: [mint, mint]\n", wantErr: `color "mint" declared twice`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(testutil.Context(t), writeFile(t, tc.content))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	_, err := NewLoader().Load(testutil.Context(t), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

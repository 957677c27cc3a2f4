package hcl_adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/resloc"
	"github.com/specialistvlad/dyegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TwoFilesMerge(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.hcl", `
namespace = "dyes"

palette {
  colors = ["maroon", "mint"]
}

role "wool" {
  id = "${color}_wool"
}

role "dye" {
  id    = "${color}_dye"
  block = false
}
`)
	extra := writeFile(t, dir, "extra.hcl", `
palette {
  colors = ["peach"]
}

role "banner" {
  id   = "banners/${lower(color)}"
  item = false
}
`)

	model, err := NewLoader().Load(testutil.Context(t), base, extra)
	require.NoError(t, err)

	assert.Equal(t, "dyes", model.Namespace)
	assert.Equal(t, []string{"maroon", "mint", "peach"}, model.Colors)
	require.Len(t, model.Roles, 3)

	dye := model.Role("dye")
	require.NotNil(t, dye)
	assert.False(t, dye.Block)
	assert.True(t, dye.Item)

	path, err := model.Role("banner").Pattern.Expand("peach")
	require.NoError(t, err)
	assert.Equal(t, "banners/peach", path)

	p, err := model.Palette()
	require.NoError(t, err)
	h, err := p.Lookup(palette.Subject{Name: "mint"}, "wool")
	require.NoError(t, err)
	assert.Equal(t, resloc.New("dyes", "mint_wool"), h.ID)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `palette {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			content: `colour = "red"`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "constant id",
			content: `role "wool" { id = "wool" }`,
			wantErr: `role "wool"`,
		},
		{
			name:    "unknown variable",
			content: `role "wool" { id = "${colour}_wool" }`,
			wantErr: `unknown variable "colour"`,
		},
		{
			name: "role declared twice",
			content: `
role "wool" { id = "${color}_wool" }
role "wool" { id = "${color}_fleece" }
`,
			wantErr: `role "wool" declared in`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "palette.hcl", tc.content)
			_, err := NewLoader().Load(testutil.Context(t), path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestExprPattern_NonStringResult(t *testing.T) {
	path := writeFile(t, t.TempDir(), "palette.hcl", `role "wool" { id = [color] }`)
	model, err := NewLoader().Load(testutil.Context(t), path)
	require.NoError(t, err)

	_, err = model.Role("wool").Pattern.Expand("maroon")
	assert.Error(t, err)
}

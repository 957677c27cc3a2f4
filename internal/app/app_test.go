package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates an app writing into an in-memory filesystem.
func setupAppTest(t *testing.T, cfg Config, files map[string]string) (*App, billy.Filesystem, *testutil.SafeBuffer, error) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	for i, p := range cfg.ConfigPaths {
		cfg.ConfigPaths[i] = filepath.Join(dir, p)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "out"
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 1
	}
	cfg.LogLevel = "debug"

	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv(testutil.LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	fs := memfs.New()
	a, err := NewApp(logs, &cfg, WithFilesystem(fs))
	return a, fs, logs, err
}

func exists(t *testing.T, fs billy.Filesystem, path string) bool {
	t.Helper()
	_, err := fs.Stat(filepath.FromSlash(path))
	return err == nil
}

func TestRun_BuiltInPalette(t *testing.T) {
	a, fs, logs, err := setupAppTest(t, Config{}, nil)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	for _, color := range palette.DefaultColors {
		assert.True(t, exists(t, fs, "assets/dyenamics/blockstates/"+color+"_candle.json"), color)
	}
	assert.Contains(t, logs.String(), "using the built-in palette")
	assert.Contains(t, logs.String(), "Generation finished.")
}

func TestRun_HCLAndYAMLMerge(t *testing.T) {
	files := map[string]string{
		"palettes/base.hcl": `
namespace = "dyes"
palette {
  colors = ["maroon"]
}
`,
		"palettes/extra/more.yaml": "colors: [mint]\n",
	}
	a, fs, _, err := setupAppTest(t, Config{ConfigPaths: []string{"palettes"}, TargetRoot: "pack"}, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"maroon", "mint"}, a.Model().Colors)

	require.NoError(t, a.Run(context.Background()))

	data, err := util.ReadFile(fs, filepath.FromSlash("pack/dyes/models/item/mint_rockwool.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"parent\": \"dyes:block/mint_wool\"\n}\n", string(data))
}

func TestNewApp_NamespaceOverride(t *testing.T) {
	files := map[string]string{"p.hcl": `namespace = "dyes"
palette {
  colors = ["maroon"]
}
`}
	a, fs, logs, err := setupAppTest(t, Config{ConfigPaths: []string{"*.hcl"}, Namespace: "override"}, files)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Namespace overridden from the command line.")

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, exists(t, fs, "assets/override/blockstates/maroon_wool.json"))
}

func TestNewApp_ConfigErrors(t *testing.T) {
	testCases := []struct {
		name    string
		paths   []string
		files   map[string]string
		wantErr string
	}{
		{name: "missing file", paths: []string{"missing.hcl"}, wantErr: "error accessing path"},
		{name: "unsupported extension", paths: []string{"p.json"}, files: map[string]string{"p.json": "{}"}, wantErr: "no loader for"},
		{name: "empty directory", paths: []string{"d"}, files: map[string]string{"d/readme.md": ""}, wantErr: "no palette files found"},
		{
			name:    "conflicting namespaces",
			paths:   []string{"a.hcl", "b.yaml"},
			files:   map[string]string{"a.hcl": `namespace = "one"`, "b.yaml": "namespace: two\n"},
			wantErr: `conflicting namespaces "one" and "two"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := setupAppTest(t, Config{ConfigPaths: tc.paths}, tc.files)
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to load configuration")
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestRun_PaletteWithoutColors(t *testing.T) {
	a, _, _, err := setupAppTest(t, Config{ConfigPaths: []string{"p.hcl"}}, map[string]string{"p.hcl": `namespace = "dyes"`})
	require.NoError(t, err)

	err = a.Run(context.Background())
	assert.ErrorContains(t, err, "failed to build palette: configuration declares no colors")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{WorkerCount: 1})
	assert.ErrorContains(t, err, "OutputDir is a required")

	_, err = NewConfig(Config{OutputDir: "out"})
	assert.ErrorContains(t, err, "WorkerCount must be at least 1")

	cfg, err := NewConfig(Config{OutputDir: "out", WorkerCount: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WorkerCount)
}

func TestExampleConfig_MatchesBuiltIn(t *testing.T) {
	example, err := filepath.Abs(filepath.Join("..", "..", "configs", "dyenamics.hcl"))
	require.NoError(t, err)

	a, fs, _, err := setupAppTest(t, Config{}, nil)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))
	builtIn := fs

	cfg := Config{OutputDir: "out", WorkerCount: 1, LogLevel: "error", ConfigPaths: []string{example}}
	fromFile := memfs.New()
	b, err := NewApp(&testutil.SafeBuffer{}, &cfg, WithFilesystem(fromFile))
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	for _, color := range palette.DefaultColors {
		for _, path := range []string{
			"assets/dyenamics/blockstates/" + color + "_stained_glass_pane.json",
			"assets/dyenamics/models/item/" + color + "_dye.json",
		} {
			want, err := util.ReadFile(builtIn, filepath.FromSlash(path))
			require.NoError(t, err)
			got, err := util.ReadFile(fromFile, filepath.FromSlash(path))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), path)
		}
	}
}

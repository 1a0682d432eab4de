package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bintree.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Debug)
	assert.Equal(t, []int{6, 2, 9, 1, 5, 8, 4}, cfg.BST.Values)
	assert.Equal(t, 3, cfg.BST.Insert)
	assert.Equal(t, 2, cfg.BST.Remove)
	assert.Equal(t, 4, cfg.BST.Query)
	assert.False(t, cfg.BST.Recursive)
	assert.Equal(t, "ab+cde+**", cfg.Expr.Postfix)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tcs := []struct {
		name   string
		toml   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "empty file keeps defaults",
			toml: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "overrides",
			toml: `
debug = true

[bst]
values = [10, 5, 15]
insert = 7
remove = 10
query = 15
recursive = true

[expr]
postfix = "xy-"
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.True(t, cfg.Debug)
				assert.Equal(t, BST{Values: []int{10, 5, 15}, Insert: 7, Remove: 10, Query: 15, Recursive: true}, cfg.BST)
				assert.Equal(t, "xy-", cfg.Expr.Postfix)
			},
		},
		{
			name: "partial table",
			toml: "[bst]\nquery = 9\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 9, cfg.BST.Query)
				assert.Equal(t, 3, cfg.BST.Insert)
				assert.Equal(t, "ab+cde+**", cfg.Expr.Postfix)
			},
		},
		{
			name: "empty postfix",
			toml: "[expr]\npostfix = \"\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "expr.postfix")
				assert.Nil(t, cfg)
			},
		},
		{
			name: "unknown key",
			toml: "[bst]\nvalue = [1]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "bst.value")
				assert.Nil(t, cfg)
			},
		},
		{
			name: "wrong type",
			toml: "[bst]\ninsert = \"three\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.toml))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.Nil(t, cfg)
}

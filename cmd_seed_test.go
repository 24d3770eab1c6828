package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
[[brands]]
name = "Al Fakher"

  [[brands.flavors]]
  name = "Mint"
  tags = ["mint"]

  [[brands.flavors]]
  name = "Double Apple"
  tags = ["fruit", "anise"]
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { dbPath = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedAndList(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kemureco.db")
	seed := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(seed, []byte(testSeed), 0o600))

	out, err := execute(t, "seed", "--db", db, seed)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 brands, 2 flavors, 3 tags from "+seed+"\n", out)

	out, err = execute(t, "seed", "--db", db, seed)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 brands, 0 flavors, 0 tags")

	out, err = execute(t, "mixes", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No mixes yet.\n", out)
}

func TestSeed_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "seed", "--db", filepath.Join(dir, "kemureco.db"), filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to import flavor catalog")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTypes(), cfg.Types)
	assert.Equal(t, 100, cfg.MaxLineWidth)
	assert.Empty(t, cfg.Path)
}

func TestLoadOverridesDefaultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	raw := `{
		"types": [
			{"key": "feat", "description": "New stuff"},
			{"key": "hotfix", "description": "Production fix"}
		],
		"max_line_width": 72
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Types, 2)
	assert.Equal(t, "hotfix", cfg.Types[1].Key)
	assert.Equal(t, "Production fix", cfg.Types[1].Description)
	assert.Equal(t, 72, cfg.MaxLineWidth)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"draft_db": "/tmp/x.db"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTypes(), cfg.Types)
	assert.Equal(t, 100, cfg.MaxLineWidth)
	assert.Equal(t, "/tmp/x.db", cfg.DraftDB)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"types": [`), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parse config")

	noKey := filepath.Join(dir, "nokey.json")
	require.NoError(t, os.WriteFile(noKey, []byte(`{"types": [{"description": "x"}]}`), 0o644))
	_, err = Load(noKey)
	assert.ErrorContains(t, err, "has no key")
}

func TestResolvePrefersFlagThenEnvThenRepo(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvDraftDB, "")
	t.Setenv(EnvDebug, "")

	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, FileName), []byte(`{"max_line_width": 80}`), 0o644))

	envPath := filepath.Join(t.TempDir(), "env.json")
	require.NoError(t, os.WriteFile(envPath, []byte(`{"max_line_width": 90}`), 0o644))

	flagPath := filepath.Join(t.TempDir(), "flag.json")
	require.NoError(t, os.WriteFile(flagPath, []byte(`{"max_line_width": 60}`), 0o644))

	t.Setenv(EnvConfig, "")
	cfg, err := Resolve("", repo)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.MaxLineWidth)
	assert.Equal(t, filepath.Join(home, ".czjira", "drafts.db"), cfg.DraftDB)

	t.Setenv(EnvConfig, envPath)
	cfg, err = Resolve("", repo)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.MaxLineWidth)

	cfg, err = Resolve(flagPath, repo)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.MaxLineWidth)
}

func TestResolveDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvWidth, "72")
	t.Setenv(EnvDraftDB, "/tmp/drafts.db")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvAccessible, "1")

	cfg, err := Resolve("", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultTypes(), cfg.Types)
	assert.Equal(t, 72, cfg.MaxLineWidth)
	assert.Equal(t, "/tmp/drafts.db", cfg.DraftDB)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Accessible)
}

func TestResolveRejectsBadWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvWidth, "wide")

	_, err := Resolve("", "")
	assert.ErrorContains(t, err, EnvWidth)
}

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/codemarket/internal/market"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestSetup_WiresConfigPrefsAndSeed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()

	logPath := filepath.Join(dir, "logs", "codemarket.log")
	seedPath := filepath.Join(dir, "seed.toml")
	configPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")

	writeFile(t, configPath, "log_path = \""+logPath+"\"\ncurrency = \"USD\"\npreview_lines = 3\nlock_sold_rows = true\n")
	writeFile(t, prefsPath, "theme = \"Slate\"\nfilter = \"sold\"\n")
	writeFile(t, seedPath, `
[[listing]]
title = "Only one"
price = 10
code = "x"
description = "y"
`)

	sess, err := setup(Options{ConfigPath: configPath, PrefsPath: prefsPath, SeedPath: seedPath})
	require.NoError(t, err)
	defer sess.close()

	snap := sess.store.Snapshot()
	require.Equal(t, 1, snap.State.Count())
	assert.Equal(t, "Only one", snap.State.Listings[0].Title)
	assert.True(t, snap.State.Selected.Is(1))

	assert.Equal(t, market.PresentOptions{Currency: "USD", PreviewLines: 3, LockSoldRows: true}, sess.ui.Present)
	assert.Equal(t, "Slate", sess.ui.ThemeName)
	assert.Equal(t, "sold", sess.ui.Filter)
	assert.Equal(t, prefsPath, sess.ui.PrefsPath)
	assert.Equal(t, logPath, sess.ui.LogPath)

	sess.store.Dispatch(market.Deselect{}, nil)
	require.NoError(t, sess.logs.Close())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "selection changed")
}

func TestSetup_MissingSeedUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, configPath, "log_path = \""+filepath.Join(dir, "x.log")+"\"\n")

	sess, err := setup(Options{
		ConfigPath: configPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		SeedPath:   filepath.Join(dir, "missing.toml"),
	})
	require.NoError(t, err)
	defer sess.close()

	assert.Equal(t, len(market.DefaultSeed()), sess.store.Snapshot().State.Count())
	assert.Equal(t, "Dark+", sess.ui.ThemeName)
}

func TestSetup_BadSeedFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	seedPath := filepath.Join(dir, "seed.toml")
	writeFile(t, configPath, "log_path = \""+filepath.Join(dir, "x.log")+"\"\n")
	writeFile(t, seedPath, "[[listing]]\nid = 1\n[[listing]]\nid = 1\n")

	_, err := setup(Options{ConfigPath: configPath, PrefsPath: filepath.Join(dir, "p.toml"), SeedPath: seedPath})
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrDuplicateID)
}

func TestSetup_BadConfigFails(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, configPath, "currency = [")

	_, err := setup(Options{ConfigPath: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

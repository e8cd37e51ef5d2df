package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/storage"
)

// writeConfig creates a configuration file in a temp dir whose preference
// store lives next to it. extra is appended verbatim.
func writeConfig(t *testing.T, backend, extra string) (configPath, storePath string) {
	t.Helper()

	dir := t.TempDir()
	storePath = filepath.Join(dir, "preferences."+backend)
	configPath = filepath.Join(dir, "config.yaml")

	content := fmt.Sprintf("preferences:\n  backend: %s\n  path: %s\nlog:\n  level: warn\n  file: \"\"\n%s", backend, storePath, extra)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath, storePath
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestThemeSetPersistsAcrossRuns(t *testing.T) {
	configPath, storePath := writeConfig(t, storage.BackendFile, "")

	out, err := executeCommand("--config", configPath, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = executeCommand("--config", configPath, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	raw, err := os.ReadFile(storePath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tskpay-theme": "dark"`)
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	configPath, _ := writeConfig(t, storage.BackendFile, "")

	_, err := executeCommand("--config", configPath, "theme", "set", "sepia")
	require.Error(t, err)

	out, err := executeCommand("--config", configPath, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeToggleWithSQLiteBackend(t *testing.T) {
	configPath, _ := writeConfig(t, storage.BackendSQLite, "")

	out, err := executeCommand("--config", configPath, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = executeCommand("--config", configPath, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeUsesConfiguredKey(t *testing.T) {
	configPath, storePath := writeConfig(t, storage.BackendFile, "")
	raw, err := os.ReadFile(configPath)
	require.NoError(t, err)
	updated := strings.Replace(string(raw), "preferences:\n", "preferences:\n  key: club.theme\n", 1)
	require.NoError(t, os.WriteFile(configPath, []byte(updated), 0o644))

	_, err = executeCommand("--config", configPath, "theme", "set", "dark")
	require.NoError(t, err)

	store, err := storage.NewFileStore(storePath)
	require.NoError(t, err)
	value, ok, err := store.Get("club.theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestInvalidConfigFails(t *testing.T) {
	configPath, _ := writeConfig(t, storage.BackendFile, "ui:\n  default_section: reports\n")

	_, err := executeCommand("--config", configPath, "theme", "get")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_section")
}

func TestCheckPrintsSampleTotals(t *testing.T) {
	configPath, _ := writeConfig(t, storage.BackendMemory, "")
	totals := billing.Sample().Totals()

	out, err := executeCommand("--config", configPath, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Skupni odprti dolg: "+billing.FormatAmount(totals.TotalOpenDebt))
	assert.Contains(t, out, "Mladinci")
	assert.Contains(t, out, "Rekreacija")
}

func TestCheckLoadsDatasetFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte(`groups:
  - id: g1
    name: Veterani
members:
  - member_id: m1
    member_name: Janez Kranjc
    group_id: g1
    status: active
    balance: 42.5
    open_items: 1
`), 0o644))
	configPath, _ := writeConfig(t, storage.BackendMemory, "data:\n  path: "+dataPath+"\n")

	out, err := executeCommand("--config", configPath, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Skupni odprti dolg: 42,50 €")
	assert.Contains(t, out, "Veterani")
}

func TestCheckReportsDatasetErrors(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte(`groups:
  - id: g1
    name: Veterani
members:
  - member_id: m1
    member_name: Janez Kranjc
    group_id: missing
    status: active
`), 0o644))
	configPath, _ := writeConfig(t, storage.BackendMemory, "data:\n  path: "+dataPath+"\n")

	_, err := executeCommand("--config", configPath, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "members[0].group_id")
}

func TestDashboardRequiresTerminal(t *testing.T) {
	if isTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	configPath, _ := writeConfig(t, storage.BackendMemory, "")

	_, err := executeCommand("--config", configPath, "dashboard")
	require.ErrorIs(t, err, errNotTerminal)
}

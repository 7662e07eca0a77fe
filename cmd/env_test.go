package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvCmd_FromStdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), ".env.local")

	cmd, out := newTestRootCmd("env", "--out", output)
	cmd.SetIn(strings.NewReader(`{"API_URL":"https://api.example.com","PORT":3000}`))

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), output+" file successfully written with 2 variables.")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "API_URL=\"https://api.example.com\"\nPORT=3000", string(content))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnvCmd_FromFile(t *testing.T) {
	dir := t.TempDir()
	secret := filepath.Join(dir, "secret.json")
	output := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(secret, []byte(`{"TOKEN":"abc"}`), 0o600))

	cmd, _ := newTestRootCmd("env", "-f", secret, "-o", output)
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `TOKEN="abc"`, string(content))
}

func TestEnvCmd_MissingFile(t *testing.T) {
	cmd, _ := newTestRootCmd("env", "--from", filepath.Join(t.TempDir(), "missing.json"), "--out", filepath.Join(t.TempDir(), ".env"))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open secret document")
}

func TestEnvCmd_InvalidDocument(t *testing.T) {
	output := filepath.Join(t.TempDir(), ".env")

	cmd, _ := newTestRootCmd("env", "--out", output)
	cmd.SetIn(strings.NewReader(`{"NESTED":{"a":1}}`))

	require.Error(t, cmd.Execute())
	assert.NoFileExists(t, output)
}

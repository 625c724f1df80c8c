package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucible-ci/crucible/internal/adapters/inbound/cli"
	"github.com/crucible-ci/crucible/internal/domain"
)

func TestInitCommand_CreatesScaffold(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"init", dir})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, domain.ManifestFileName))
	assert.FileExists(t, filepath.Join(dir, ".golangci.yml"))
	assert.FileExists(t, filepath.Join(dir, ".github", "workflows", "ci.yml"))
	assert.Contains(t, buf.String(), "Created "+domain.ManifestFileName)
}

func TestInitCommand_NamePlumbsThrough(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", dir, "--name", "mytool"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `name = "mytool"`)
	assert.NotContains(t, string(data), "TODO: update package name")
}

func TestInitCommand_RefusesToClobber(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", dir})
	require.NoError(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte("old"), 0644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", dir, "--force"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/gitinfo"
)

func TestDescribe_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, ok := gitinfo.New().Describe(dir)
	assert.False(t, ok)
}

func TestDescribe_EmptyRepoHasNoHead(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init", "-b", "main")

	_, ok := gitinfo.New().Describe(dir)
	assert.False(t, ok, "a repo without commits has no HEAD to describe")
}

func TestDescribe_ReportsBranchAndShortCommit(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	status, ok := gitinfo.New().Describe(dir)
	require.True(t, ok)
	assert.Equal(t, "main", status.Branch)
	assert.Len(t, status.Commit, 8)
}

func TestDescribe_DetectsDotGitFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	_, ok := gitinfo.New().Describe(sub)
	assert.True(t, ok)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

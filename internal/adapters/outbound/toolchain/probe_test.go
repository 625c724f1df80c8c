package toolchain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/toolchain"
	"github.com/crucible-ci/crucible/internal/domain"
)

type fakeRunner struct {
	result domain.CommandResult
	err    error
	cmd    domain.Command
}

func (f *fakeRunner) Run(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	f.cmd = cmd
	return f.result, f.err
}

func TestInstalled_ParsesRelease(t *testing.T) {
	runner := &fakeRunner{result: domain.CommandResult{Stdout: []byte("go1.24.1\n")}}

	v, err := toolchain.New(runner).Installed(context.Background(), ".")
	require.NoError(t, err)
	assert.Equal(t, "1.24.1", v.String())
	assert.Equal(t, []string{"go", "env", "GOVERSION"}, runner.cmd.Argv)
	assert.True(t, runner.cmd.Capture)
}

func TestInstalled_ParsesPrerelease(t *testing.T) {
	runner := &fakeRunner{result: domain.CommandResult{Stdout: []byte("go1.25rc1\n")}}

	v, err := toolchain.New(runner).Installed(context.Background(), ".")
	require.NoError(t, err)
	assert.Equal(t, uint64(25), v.Minor())
	assert.NotEmpty(t, v.Prerelease())
}

func TestInstalled_RunnerErrorPropagates(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: go: not found")}

	_, err := toolchain.New(runner).Installed(context.Background(), ".")
	assert.Error(t, err)
}

func TestInstalled_NonZeroExit(t *testing.T) {
	runner := &fakeRunner{result: domain.CommandResult{ExitCode: 1}}

	_, err := toolchain.New(runner).Installed(context.Background(), ".")
	assert.Error(t, err)
}

func TestInstalled_GarbageOutput(t *testing.T) {
	runner := &fakeRunner{result: domain.CommandResult{Stdout: []byte("devel +abcdef\n")}}

	_, err := toolchain.New(runner).Installed(context.Background(), ".")
	assert.Error(t, err)
}

package execrunner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/execrunner"
	"github.com/crucible-ci/crucible/internal/domain"
)

func TestRun_NonZeroExitIsAResult(t *testing.T) {
	r := execrunner.New()

	res, err := r.Run(context.Background(), domain.Command{
		Argv: []string{"sh", "-c", "exit 7"},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, res.ExitCode)
}

func TestRun_CapturesStdout(t *testing.T) {
	r := execrunner.New()

	res, err := r.Run(context.Background(), domain.Command{
		Argv:    []string{"sh", "-c", "echo hello"},
		Capture: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", string(res.Stdout))
}

func TestRun_EnvOverridesVisible(t *testing.T) {
	r := execrunner.New()

	res, err := r.Run(context.Background(), domain.Command{
		Argv:    []string{"sh", "-c", `printf "%s" "$CRUCIBLE_TEST_VAR"`},
		Env:     map[string]string{"CRUCIBLE_TEST_VAR": "overlaid"},
		Capture: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "overlaid", string(res.Stdout))
}

func TestRun_RunsInDir(t *testing.T) {
	r := execrunner.New()
	dir := t.TempDir()

	res, err := r.Run(context.Background(), domain.Command{
		Argv:    []string{"pwd"},
		Dir:     dir,
		Capture: true,
	})
	require.NoError(t, err)
	assert.Contains(t, string(res.Stdout), dir)
}

func TestRun_MissingBinaryIsAnError(t *testing.T) {
	r := execrunner.New()

	_, err := r.Run(context.Background(), domain.Command{
		Argv: []string{"definitely-not-a-real-binary-2f8a"},
	})
	assert.Error(t, err)
}

func TestRun_EmptyCommandIsAnError(t *testing.T) {
	r := execrunner.New()

	_, err := r.Run(context.Background(), domain.Command{})
	assert.Error(t, err)
}

func TestRun_ContextCancellationKillsProcess(t *testing.T) {
	r := execrunner.New()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, domain.Command{
		Argv: []string{"sh", "-c", "sleep 10"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

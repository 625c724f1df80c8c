package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/crucible-ci/crucible/internal/domain"
)

// Runner implements domain.CommandRunner with real subprocesses. Tool output
// streams to the parent's stdout/stderr unless the command asks for capture;
// either way stderr stays live so failing tools print their own errors.
type Runner struct{}

func New() *Runner { return &Runner{} }

func (r *Runner) Run(ctx context.Context, c domain.Command) (domain.CommandResult, error) {
	if len(c.Argv) == 0 {
		return domain.CommandResult{}, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = mergeEnv(os.Environ(), c.Env)
	cmd.Stderr = os.Stderr

	var captured bytes.Buffer
	if c.Capture {
		cmd.Stdout = &captured
	} else {
		cmd.Stdout = os.Stdout
	}

	start := time.Now()
	err := cmd.Run()
	result := domain.CommandResult{
		Stdout:   captured.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Tool missing or not executable.
		return result, err
	}
	return result, nil
}

// mergeEnv overlays overrides on the inherited environment. Later entries
// win in os/exec, so appending is enough.
func mergeEnv(inherited []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return inherited
	}
	merged := make([]string, 0, len(inherited)+len(overrides))
	merged = append(merged, inherited...)
	for k, v := range overrides {
		merged = append(merged, k+"="+v)
	}
	return merged
}

package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/crucible-ci/crucible/internal/domain"
)

// Probe implements domain.ToolchainProbe by asking the go tool itself.
type Probe struct {
	runner domain.CommandRunner
}

func New(runner domain.CommandRunner) *Probe {
	return &Probe{runner: runner}
}

// Installed reports the version of the Go toolchain that commands will run
// under in projectPath (GOTOOLCHAIN selection included, since the go tool
// answers for itself).
func (p *Probe) Installed(ctx context.Context, projectPath string) (*semver.Version, error) {
	res, err := p.runner.Run(ctx, domain.Command{
		Argv:    []string{"go", "env", "GOVERSION"},
		Dir:     projectPath,
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("probing go toolchain: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("go env GOVERSION exited with status %d", res.ExitCode)
	}

	raw := strings.TrimSpace(string(res.Stdout))
	v, err := semver.NewVersion(normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing toolchain version %q: %w", raw, err)
	}
	return v, nil
}

// normalize turns GOVERSION output ("go1.24.1", "go1.25rc1") into something
// semver accepts: pre-release markers become a semver pre-release suffix.
func normalize(raw string) string {
	s := strings.TrimPrefix(raw, "go")
	for _, marker := range []string{"rc", "beta"} {
		if i := strings.Index(s, marker); i > 0 {
			return s[:i] + "-" + s[i:]
		}
	}
	return s
}

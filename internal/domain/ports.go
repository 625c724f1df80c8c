package domain

import (
	"context"
	"time"

	"github.com/Masterminds/semver/v3"
)

// CommandResult is the outcome of one tool invocation. A non-zero exit code
// is a result, not an error: errors are reserved for failures to run the
// tool at all.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Duration time.Duration
}

// CommandRunner executes external tool invocations.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// ManifestLoader reads and validates the project manifest.
type ManifestLoader interface {
	Load(projectPath string) (*Manifest, error)
}

// ToolchainProbe reports the installed Go toolchain version.
type ToolchainProbe interface {
	Installed(ctx context.Context, projectPath string) (*semver.Version, error)
}

// GitStatus is the repository position a run banner reports.
type GitStatus struct {
	Branch string
	Commit string
}

// GitInspector reads repository metadata. The second return is false when
// projectPath is not inside a repository.
type GitInspector interface {
	Describe(projectPath string) (GitStatus, bool)
}

// Reporter receives progress events while stages execute. Implementations
// must not retain the values past the call.
type Reporter interface {
	StageStarted(stage Stage)
	CommandStarted(cmd Command)
	StageFinished(result StageResult)
}

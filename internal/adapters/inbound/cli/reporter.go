package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/tui"
	"github.com/crucible-ci/crucible/internal/domain"
)

// consoleReporter implements domain.Reporter for interactive runs: styled
// headers on stdout, structured command tracing on the logger. quiet
// suppresses the decoration for --json runs.
type consoleReporter struct {
	out   io.Writer
	log   zerolog.Logger
	quiet bool
}

func (r *consoleReporter) StageStarted(stage domain.Stage) {
	if !r.quiet {
		fmt.Fprint(r.out, tui.RenderHeader(headline(stage)))
	}
	r.log.Debug().Str("stage", string(stage.Name)).Msg("stage started")
}

func (r *consoleReporter) CommandStarted(cmd domain.Command) {
	if !r.quiet {
		fmt.Fprint(r.out, tui.RenderCommand(cmd))
	}
	r.log.Debug().
		Strs("argv", cmd.Argv).
		Interface("env", cmd.Env).
		Msg("exec")
}

func (r *consoleReporter) StageFinished(result domain.StageResult) {
	event := r.log.Debug().
		Str("stage", string(result.Stage)).
		Bool("passed", result.Passed).
		Dur("duration", result.Duration)
	if !result.Passed {
		event = event.Int("exit_code", result.ExitCode)
	}
	event.Msg("stage finished")
}

func headline(stage domain.Stage) string {
	if stage.Summary != "" {
		return stage.Summary
	}
	return string(stage.Name)
}

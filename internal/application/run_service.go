package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crucible-ci/crucible/internal/domain"
)

// RunService orchestrates the CI pipeline: load manifest -> build stage
// plans -> dispatch -> propagate the delegated tool's result. It performs no
// interpretation, retry, or recovery of tool failures: CI fails loudly and
// immediately.
type RunService struct {
	runner    domain.CommandRunner
	manifests domain.ManifestLoader
	reporter  domain.Reporter
}

func NewRunService(
	runner domain.CommandRunner,
	manifests domain.ManifestLoader,
	reporter domain.Reporter,
) *RunService {
	return &RunService{
		runner:    runner,
		manifests: manifests,
		reporter:  reporter,
	}
}

// Run executes the stage named by token. An empty token or "all" runs the
// full sequence, halting at the first failure. The returned report covers
// every stage attempted, including a failing one, so callers can render a
// partial summary alongside the error.
func (s *RunService) Run(ctx context.Context, projectPath, token string) (*domain.RunReport, error) {
	manifest, err := s.manifests.Load(projectPath)
	if err != nil {
		return nil, err
	}

	stages := domain.BuildStages(manifest)
	report := &domain.RunReport{}

	if token == "" || token == string(domain.StageAll) {
		for _, st := range stages {
			if err := s.runStage(ctx, projectPath, st, report); err != nil {
				return report, err
			}
		}
		report.Passed = true
		return report, nil
	}

	st, ok := domain.FindStage(stages, token)
	if !ok {
		return nil, &domain.UnknownStageError{Token: token, Valid: domain.StageNames()}
	}

	if err := s.runStage(ctx, projectPath, st, report); err != nil {
		return report, err
	}
	report.Passed = true
	return report, nil
}

func (s *RunService) runStage(ctx context.Context, projectPath string, st domain.Stage, report *domain.RunReport) error {
	s.reporter.StageStarted(st)

	start := time.Now()
	err := s.execute(ctx, projectPath, st)

	result := domain.StageResult{
		Stage:    st.Name,
		Passed:   err == nil,
		Duration: time.Since(start),
	}
	if err != nil {
		result.ExitCode = domain.ExitCodeFor(err)
		result.Error = err.Error()
	}

	report.Stages = append(report.Stages, result)
	s.reporter.StageFinished(result)
	return err
}

// execute runs a stage's commands in order. The first failing command fails
// the stage.
func (s *RunService) execute(ctx context.Context, projectPath string, st domain.Stage) error {
	for _, cmd := range st.Commands {
		cmd.Dir = projectPath
		s.reporter.CommandStarted(cmd)

		res, err := s.runner.Run(ctx, cmd)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &domain.ExternalError{Err: fmt.Errorf("running %s: %w", cmd.Argv[0], err)}
		}

		if st.FailOnOutput {
			if files := strings.TrimSpace(string(res.Stdout)); files != "" {
				return domain.Externalf(1, "%s: files need reformatting:\n%s", st.Name, files)
			}
		}
		if res.ExitCode != 0 {
			return domain.Externalf(res.ExitCode, "%s: %s exited with status %d", st.Name, cmd.Argv[0], res.ExitCode)
		}
	}
	return nil
}

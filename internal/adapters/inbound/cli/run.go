package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/execrunner"
	"github.com/crucible-ci/crucible/internal/adapters/outbound/gitinfo"
	"github.com/crucible-ci/crucible/internal/adapters/outbound/manifest"
	"github.com/crucible-ci/crucible/internal/adapters/outbound/toolchain"
	"github.com/crucible-ci/crucible/internal/adapters/outbound/tui"
	"github.com/crucible-ci/crucible/internal/application"
	"github.com/crucible-ci/crucible/internal/domain"
	"github.com/crucible-ci/crucible/internal/observability"
)

func newRunCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run [stage]",
		Short: "Run CI stages",
		Long: "Run one CI stage, or the full fail-fast sequence when no stage is given.\n" +
			"The delegated tool's exit status propagates unchanged.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := string(domain.StageAll)
			if len(args) == 1 {
				token = args[0]
			}

			logger := observability.NewLogger(cmd.ErrOrStderr(), "crucible", verbose)
			runner := execrunner.New()
			loader := manifest.NewLoader()
			reporter := &consoleReporter{
				out:   cmd.OutOrStdout(),
				log:   logger,
				quiet: jsonOutput,
			}

			if !jsonOutput {
				printBanner(cmd, loader, runner, path)
			}

			svc := application.NewRunService(runner, loader, reporter)
			report, err := svc.Run(cmd.Context(), path, token)

			if report != nil {
				if jsonOutput {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(report); encErr != nil {
						return encErr
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report))
				}
			}

			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to run CI in")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log every spawned command to stderr")

	return cmd
}

// printBanner reports project identity, git position and toolchain status
// before the first stage runs. Every piece is best-effort: a missing or
// broken manifest is diagnosed by the run itself, not here.
func printBanner(cmd *cobra.Command, loader domain.ManifestLoader, runner domain.CommandRunner, path string) {
	m, _ := loader.Load(path)

	git, haveGit := gitinfo.New().Describe(path)

	goVersion := ""
	msrvOK := true
	if installed, err := toolchain.New(runner).Installed(cmd.Context(), path); err == nil {
		goVersion = installed.String()
		if m != nil {
			if msrv := m.MSRV(); msrv != nil {
				msrvOK = !installed.LessThan(msrv)
			}
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderBanner(m, git, haveGit, goVersion, msrvOK))
}

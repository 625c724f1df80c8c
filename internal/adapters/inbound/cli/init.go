package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/scaffold"
)

func newInitCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate the project scaffold",
		Long: "Create crucible.toml, a lint configuration derived from the default\n" +
			"policy, and a CI workflow that invokes crucible.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			files, err := scaffold.Generate(name)
			if err != nil {
				return err
			}

			if err := scaffold.Write(absDir, files, force); err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Package name (default: a TODO placeholder)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

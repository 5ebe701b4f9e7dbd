package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slidey/internal/infra/fsproject"
	"github.com/aalvaropc/slidey/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create slidey.yaml and an example deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitProject(fsproject.NewInitializer()).Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized slidey project in %s\n", root)
			fmt.Fprintf(cmd.OutOrStdout(), "Try: slidey %s\n", filepath.Join(root, "decks", "example.yaml"))
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Project directory")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slidey/internal/infra/goppt"
	"github.com/aalvaropc/slidey/internal/infra/imagefile"
	"github.com/aalvaropc/slidey/internal/infra/logger"
	"github.com/aalvaropc/slidey/internal/infra/yamldeck"
	"github.com/aalvaropc/slidey/internal/usecase"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE.yaml",
		Short: "Check a deck without writing a presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckPath := args[0]
			if err := checkDeckPath(deckPath); err != nil {
				return err
			}

			proj, err := loadProject(deckPath)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateDeck(
				yamldeck.NewLoader(),
				goppt.Layouts(),
				imagefile.NewLoader(),
				usecase.WithConfig(proj.cfg),
				usecase.WithLogger(logger.L()),
			)

			report, err := uc.Execute(cmd.Context(), deckPath)
			if err != nil {
				return err
			}

			th := defaultTheme()
			fmt.Fprintln(cmd.OutOrStdout(), th.Success.Render("OK")+fmt.Sprintf(" %s (%d slides)", deckPath, len(report.Slides)))
			printWarnings(cmd.ErrOrStderr(), th, report.Warnings)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/infra/goppt"
	"github.com/aalvaropc/slidey/internal/usecase"
)

func layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List slide layout ids and names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLayouts(cmd.OutOrStdout(), usecaseLayouts())
			return nil
		},
	}
}

func usecaseLayouts() []domain.Layout {
	return usecase.NewListLayouts(goppt.NewFactory()).Execute()
}

func printLayouts(w io.Writer, layouts []domain.Layout) {
	th := defaultTheme()
	for _, l := range layouts {
		var holders []string
		if l.HasTitle() {
			holders = append(holders, "title")
		}
		if l.HasBody() {
			holders = append(holders, "text")
		}
		if len(holders) == 0 {
			holders = append(holders, "-")
		}

		fmt.Fprintf(w, "%2d %-26s %s\n", l.Index, l.Name, th.Subtitle.Render(strings.Join(holders, ", ")))
	}
}

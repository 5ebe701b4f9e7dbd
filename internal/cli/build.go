package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/infra/gochart"
	"github.com/aalvaropc/slidey/internal/infra/goppt"
	"github.com/aalvaropc/slidey/internal/infra/imagefile"
	"github.com/aalvaropc/slidey/internal/infra/logger"
	"github.com/aalvaropc/slidey/internal/infra/reportstore"
	"github.com/aalvaropc/slidey/internal/infra/yamldeck"
	"github.com/aalvaropc/slidey/internal/usecase"
)

type buildFlags struct {
	output     string
	format     string
	saveReport bool
}

func buildCmd() *cobra.Command {
	var f buildFlags

	c := &cobra.Command{
		Use:   "build FILE.yaml",
		Short: "Build a .pptx presentation from a YAML deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], f)
		},
	}

	c.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: deck name with .pptx)")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&f.saveReport, "save-report", false, "Save a JSON build report under .slidey/reports")
	return c
}

func runBuild(cmd *cobra.Command, deckPath string, f buildFlags) error {
	if err := checkDeckPath(deckPath); err != nil {
		return err
	}
	if f.format != "pretty" && f.format != "json" {
		return fmt.Errorf("unsupported format %q (expected pretty|json)", f.format)
	}

	proj, err := loadProject(deckPath)
	if err != nil {
		return err
	}

	out := f.output
	if out == "" {
		out = outputPath(deckPath, proj.cfg.Output.Dir, proj.root)
	}

	log := logger.L()
	log.Info("build.started", "deck", deckPath, "output", out, "project", proj.root)

	uc := usecase.NewBuildDeck(
		yamldeck.NewLoader(),
		goppt.NewFactory(),
		gochart.NewRenderer(gochart.WithDPI(proj.cfg.Chart.DPI)),
		imagefile.NewLoader(),
		usecase.WithConfig(proj.cfg),
		usecase.WithLogger(log),
	)

	var report domain.BuildReport
	err = writeAtomic(out, func(w io.Writer) error {
		var buildErr error
		report, buildErr = uc.Execute(cmd.Context(), deckPath, w)
		return buildErr
	})
	if err != nil {
		log.Error("build.failed", "deck", deckPath, "err", err)
		return err
	}
	report.OutputPath = out

	var reportPath string
	if f.saveReport {
		base := proj.root
		if base == "" {
			base = filepath.Dir(deckPath)
		}
		reportPath, err = reportstore.NewJSONStore(base, reportstore.WithIndex(true)).SaveReport(report)
		if err != nil {
			return err
		}
	}

	return printReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, reportPath, f.format)
}

func printReport(w, warnings io.Writer, report domain.BuildReport, reportPath, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"report":      report,
			"report_path": reportPath,
		})
	}

	th := defaultTheme()
	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("Built %s", report.OutputPath)))
	printSlides(w, th, report)
	fmt.Fprintln(w, th.Subtitle.Render(fmt.Sprintf("Duration: %s", durationOf(report))))
	if reportPath != "" {
		fmt.Fprintf(w, "Report: %s\n", reportPath)
	}
	printWarnings(warnings, th, report.Warnings)
	return nil
}

func printSlides(w io.Writer, th theme, report domain.BuildReport) {
	for _, s := range report.Slides {
		title := s.Title
		if title == "" {
			title = th.Subtitle.Render("(no title)")
		}

		var parts []string
		if s.Paragraphs > 0 {
			parts = append(parts, fmt.Sprintf("%d paragraph(s)", s.Paragraphs))
		}
		if s.Pictures > 0 {
			parts = append(parts, fmt.Sprintf("%d picture(s)", s.Pictures))
		}
		if s.Charts > 0 {
			parts = append(parts, fmt.Sprintf("%d chart(s)", s.Charts))
		}

		fmt.Fprintf(w, "  %2d  %-24s %s", s.Index+1, s.Layout, title)
		if len(parts) > 0 {
			fmt.Fprint(w, th.Subtitle.Render("  "+strings.Join(parts, ", ")))
		}
		fmt.Fprintln(w)
	}
}

func printWarnings(w io.Writer, th theme, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, th.Warning.Render("warning:")+" "+msg)
	}
}

func durationOf(report domain.BuildReport) time.Duration {
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		return 0
	}
	return report.EndedAt.Sub(report.StartedAt).Round(time.Millisecond)
}

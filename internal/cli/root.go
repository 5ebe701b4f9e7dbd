package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slidey/internal/infra/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug       bool
		logFile     string
		listLayouts bool
		cleanup     func() error
	)

	cmd := &cobra.Command{
		Use:           "slidey [FILE.yaml]",
		Short:         "slidey turns YAML slide decks into PowerPoint files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := logger.Setup(logger.Config{Path: logFile, Debug: debug})
			if err != nil {
				return fmt.Errorf("set up log file: %w", err)
			}
			cleanup = c
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listLayouts {
				printLayouts(cmd.OutOrStdout(), usecaseLayouts())
				return nil
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runBuild(cmd, args[0], buildFlags{format: "pretty"})
		},
	}

	cmd.Flags().BoolVarP(&listLayouts, "layouts", "l", false, "List layout ids and names")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level with source locations")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")

	cmd.AddCommand(
		buildCmd(),
		layoutsCmd(),
		validateCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

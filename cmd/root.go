package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "aito",
		Short:         "AITO: moderated persona meetings and daily self-reflection",
		Long:          "aito runs moderated meetings between the ATOM personas over a shared conversation log and audits a persona's day through the self-reflection pipeline.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logConfig := zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(app.cfg.LogLevel)
		if verbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		logger, err := logConfig.Build()
		if err != nil {
			return err
		}
		app.logger = logger
		return nil
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
		if err := app.close(); err != nil {
			app.logger.Warn("close application", zap.Error(err))
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newPersonaCmd(app),
		newAuthCmd(app),
		newMeetCmd(app),
		newReflectCmd(app),
		newHistoryCmd(app),
		newMCPCmd(app),
	)

	return rootCmd
}

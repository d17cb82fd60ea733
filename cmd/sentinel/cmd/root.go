package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amontanana/safety-sentinel/internal/config"
	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/service/controller"
	"github.com/amontanana/safety-sentinel/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level for log output.
	logLevel string

	// rootCmd represents the base command running the sentinel controller.
	rootCmd = &cobra.Command{
		Use:   "sentinel",
		Short: "Run the proximity alarm and fall-detection controller.",
		Long: `Starts the sentinel controller with simulated hardware drivers.

The controller ranges a target on a fixed period, classifies the distance
into safe/caution/danger tiers driving indicators and a pulsed buzzer, and
samples a three-axis accelerometer on a timer to detect falls.
Status and alert lines are written to stdout; typing 'o' toggles the
system enable flag, any other input is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &controller.Options{
				ConfigPath: configPath,
			}

			return controller.Run(ctx, options)
		},
	}
)

// Execute runs the sentinel CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "minimum log level (debug, info, warn, error)")
}

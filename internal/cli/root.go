package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rf",
	Short: "RaptorFlow - marketing Move planner",
	Long: `RaptorFlow (rf) turns a marketing objective into a Move: a strategic brief
plus a day-by-day execution plan of pillar, cluster and network tasks.

Pick one of five categories (ignite, capture, authority, repair, rally),
describe the situation, answer three clarifying questions, and launch.
Launched Moves are saved so their tasks can be tracked to done.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.WarnLevel
		if Cfg != nil {
			if err := level.Set(Cfg.LogLevel); err != nil {
				level = zapcore.WarnLevel
			}
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		logger, err := NewLogger(level)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		Logger = logger
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = Logger.Sync()
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rf %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

// NewLogger builds the diagnostic logger. Output goes to stderr so command
// output on stdout stays machine-readable.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/footprint/internal/config"
	"github.com/abhisek/footprint/internal/console"
	"github.com/abhisek/footprint/internal/report"
	"github.com/abhisek/footprint/internal/store"
	"github.com/abhisek/footprint/internal/ui/theme"
)

// Resolved in PersistentPreRunE for every command.
var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Estimate your carbon footprint",
	Long: "Footprint asks five questions about your habits, estimates your yearly CO₂ emissions\n" +
		"and tracks how the estimate changes every time you answer again.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), st,
			console.WithLogger(logger),
			console.WithStyles(stylesFor(cmd.OutOrStdout())),
			console.WithPath(st.Path()),
		)
		return c.Run(cmd.Context())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Path to the answers file (overrides "+config.EnvFile+" env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default "+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration with --file taking priority over
// FOOTPRINT_FILE, then the config file, then the default, and builds the
// logger.
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.ApplyEnv(os.Getenv)
	if f, _ := cmd.Flags().GetString("file"); f != "" {
		c.File = f
	}

	level, err := c.Level()
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zapcore.DebugLevel
	}

	l, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	cfg = c
	logger = l
	logger.Debug("configuration resolved",
		zap.String("file", cfg.File),
		zap.Stringer("level", level),
	)
	return nil
}

// newLogger builds a human-readable stderr logger.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil
	return zc.Build()
}

func openStore() (*store.JSONStore, error) {
	st, err := store.Open(cfg.File, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// stylesFor colors output only when w is a terminal.
func stylesFor(w io.Writer) report.Styles {
	f, ok := w.(*os.File)
	if !ok {
		return report.PlainStyles()
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return theme.ReportStyles()
	}
	return report.PlainStyles()
}

package cmd

import (
	"fmt"
	"os"

	"secretclip/pkg/clipboard"
	"secretclip/pkg/completions"
	"secretclip/pkg/config"
	"secretclip/pkg/errors"
	"secretclip/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var outputFormat string
var logLevel string

// deps is swapped out by tests.
var deps = clipboard.DefaultDeps()

var rootCmd = &cobra.Command{
	Use:   "secretclip",
	Short: "Copy secrets to the clipboard and wipe them afterwards",
	Long: `Copies a secret to the Linux clipboard using xsel, xclip or wl-copy and
clears it again after a timeout. Content copied by anything else in the
meantime is left alone where the clipboard tool allows reading it back.
Configuration lives in $XDG_CONFIG_HOME/secretclip/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Explicit flag takes precedence over env var and config file
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
				level = cfg.LogLevel
			}
		}
		if _, ok := logger.ParseLevel(level); !ok {
			logger.Warn().Str("level", level).Msg("unknown log level, using default")
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "secretclip version %s\n", ver)
		fmt.Fprintf(out, "Built: %s\n", bt)
		fmt.Fprintf(out, "Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLevel, "Log level (debug, info, warn, error, disabled)")

	completions.RegisterCompletions(rootCmd, deps.Env)
}

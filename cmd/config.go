package cmd

import (
	"fmt"
	"os"

	"secretclip/pkg/config"
	"secretclip/pkg/errors"

	"github.com/spf13/cobra"
)

var configInitForce bool

// ConfigOutput is the structured form of the effective configuration
type ConfigOutput struct {
	Path       string `json:"path" yaml:"path"`
	Backend    string `json:"backend" yaml:"backend"`
	ClearAfter int    `json:"clear_after" yaml:"clear_after"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage secretclip configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after the config file and SECRETCLIP_* environment variables are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}

		out := ConfigOutput{
			Path:       path,
			Backend:    cfg.Clipboard.Backend,
			ClearAfter: cfg.Clipboard.ClearAfterSeconds(),
			LogLevel:   cfg.LogLevel,
		}

		writer := NewOutputWriter(outputFormat)
		writer.SetWriter(cmd.OutOrStdout())
		if writer.IsStructured() {
			return writer.Write(out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Current Configuration:")
		fmt.Fprintln(w, "======================")
		fmt.Fprintf(w, "Config file: %s\n", out.Path)
		fmt.Fprintf(w, "Backend: %s\n", func() string {
			if out.Backend == "" {
				return "(auto-detect)"
			}
			return out.Backend
		}())
		fmt.Fprintf(w, "Clear after: %s\n", func() string {
			if out.ClearAfter <= 0 {
				return "(never)"
			}
			return fmt.Sprintf("%ds", out.ClearAfter)
		}())
		fmt.Fprintf(w, "Log level: %s\n", func() string {
			if out.LogLevel == "" {
				return "(default)"
			}
			return out.LogLevel
		}())

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			confirmed, err := ConfirmPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Overwrite %s", path))
			if err != nil {
				return errors.NewWithError(errors.ExitCodeInputUnavailable, "failed to read confirmation", err)
			}
			if !confirmed {
				return errors.NewWithSuggestion(errors.ExitCodeFileOperation,
					fmt.Sprintf("Config file already exists: %s", path),
					"Use --force to overwrite it.")
			}
		}

		if err := config.Save(config.Default()); err != nil {
			return errors.Wrap(err, errors.ErrMsgConfigSave)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"secretclip/pkg/clipboard"
	"secretclip/pkg/config"
	"secretclip/pkg/errors"
	"secretclip/pkg/logger"
	"secretclip/pkg/progress"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	copyBackend     string
	copyClearAfter  int
	copyKeepNewline bool
	copyQuiet       bool
)

var copyCmd = &cobra.Command{
	Use:   "copy [secret]",
	Short: "Copy a secret to the clipboard and clear it after a timeout",
	Long: `Copy a secret to the clipboard. The secret is taken from the argument or,
if none is given, read from standard input.

After copying, the command waits for the clear timeout and then wipes the
clipboard. With xsel and xclip the clipboard is only wiped if it still holds
the secret; wl-copy cannot read the clipboard back and always wipes it.`,
	Example: `  # Copy from a password manager and clear after the configured timeout
  rbw get github | secretclip copy

  # Force xclip and clear after 10 seconds
  secretclip copy --backend xclip --clear-after 10 < token.txt

  # Copy without clearing
  secretclip copy -t 0 "not so secret"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		backendName := cfg.Clipboard.Backend
		if cmd.Flags().Changed("backend") {
			backendName = copyBackend
		}
		clearAfter := cfg.Clipboard.ClearAfterSeconds()
		if cmd.Flags().Changed("clear-after") {
			clearAfter = copyClearAfter
		}

		secret, err := readSecret(args, cmd.InOrStdin(), copyKeepNewline)
		if err != nil {
			return err
		}

		backend := clipboard.Select(backendName, deps)
		return copyAndClear(cmd.ErrOrStderr(), backend, secret, clearAfter, !copyQuiet)
	},
}

// copyAndClear copies secret with backend and then blocks until the clear
// has run. showCountdown draws a countdown on w when w is a terminal.
func copyAndClear(w io.Writer, backend clipboard.Backend, secret string, clearAfter int, showCountdown bool) error {
	if err := backend.Copy(secret); err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Fprint(w, "✓ ")
	fmt.Fprintf(w, "Copied to clipboard using %s\n", backend.Name())
	logger.Info().Str("backend", backend.Name()).Int("clear_after", clearAfter).Msg("secret copied")

	if clearAfter <= 0 {
		return nil
	}

	clearFn := func() error {
		return backend.Clear(clearAfter)
	}
	if showCountdown && logger.IsTerminal(w) {
		return progress.WithCountdown(w, "Clearing clipboard in", time.Duration(clearAfter)*time.Second, clearFn)
	}
	return clearFn()
}

// readSecret returns the secret from args or, failing that, from r. A single
// trailing newline from r is dropped unless keepNewline is set.
func readSecret(args []string, r io.Reader, keepNewline bool) (string, error) {
	if len(args) > 0 {
		if args[0] == "" {
			return "", errors.ValidationError("nothing to copy: the secret is empty")
		}
		return args[0], nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewWithError(errors.ExitCodeInputUnavailable, errors.ErrMsgReadInput, err)
	}

	secret := string(data)
	if !keepNewline {
		if strings.HasSuffix(secret, "\r\n") {
			secret = strings.TrimSuffix(secret, "\r\n")
		} else {
			secret = strings.TrimSuffix(secret, "\n")
		}
	}
	if secret == "" {
		return "", errors.ValidationError("nothing to copy: the secret is empty")
	}
	return secret, nil
}

func init() {
	copyCmd.Flags().StringVarP(&copyBackend, "backend", "b", "", "Clipboard backend to use (xsel, xclip, wl-copy); auto-detected if unset")
	copyCmd.Flags().IntVarP(&copyClearAfter, "clear-after", "t", config.DefaultClearAfter, "Seconds before the clipboard is cleared; 0 or less disables clearing")
	copyCmd.Flags().BoolVar(&copyKeepNewline, "keep-newline", false, "Keep a trailing newline read from standard input")
	copyCmd.Flags().BoolVarP(&copyQuiet, "quiet", "q", false, "Do not show the clear countdown")
}

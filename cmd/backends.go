package cmd

import (
	"fmt"
	"io"

	"secretclip/pkg/clipboard"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// BackendsOutput is the structured form of the backends listing
type BackendsOutput struct {
	Session  string                   `json:"session" yaml:"session"`
	Backends []clipboard.Availability `json:"backends" yaml:"backends"`
}

var backendsCmd = &cobra.Command{
	Use:     "backends",
	Aliases: []string{"backend"},
	Short:   "List clipboard backends and which one would be used",
	Example: `  # Show backends in probing order
  secretclip backends

  # Output as JSON
  secretclip backends --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := BackendsOutput{
			Session:  sessionKind(deps.Env),
			Backends: clipboard.Probe(deps.Env),
		}

		writer := NewOutputWriter(outputFormat)
		writer.SetWriter(cmd.OutOrStdout())
		if writer.IsStructured() {
			return writer.Write(out)
		}

		printBackendsTable(cmd.OutOrStdout(), out)
		return nil
	},
}

func sessionKind(env clipboard.Environment) string {
	if env.IsWaylandSession() {
		return "wayland"
	}
	return "x11"
}

func printBackendsTable(w io.Writer, out BackendsOutput) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "Session: %s\n\n", out.Session)
	fmt.Fprintf(w, "%-10s %s\n", "BACKEND", "STATUS")

	anySelected := false
	for _, b := range out.Backends {
		status := red.Sprint("unavailable")
		pad := len("unavailable")
		if b.Supported {
			status = green.Sprint("available")
			pad = len("available")
		}
		marker := ""
		if b.Selected {
			marker = bold.Sprint("← auto-detected")
			anySelected = true
		}
		fmt.Fprintf(w, "%-10s %s%*s %s\n", b.Name, status, 14-pad, "", marker)
	}

	if !anySelected {
		fmt.Fprintln(w)
		red.Fprintln(w, "No clipboard backend is available. Install xsel or xclip (X11) or wl-clipboard (Wayland).")
	}
}

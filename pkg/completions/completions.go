package completions

import (
	"fmt"
	"strings"

	"secretclip/pkg/clipboard"

	"github.com/spf13/cobra"
)

type Completer struct {
	env clipboard.Environment
}

func NewCompleter(env clipboard.Environment) *Completer {
	return &Completer{env: env}
}

// CompleteBackend offers the registered backend names, annotated with
// whether each one works in the current session.
func (c *Completer) CompleteBackend(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var backends []string
	for _, a := range clipboard.Probe(c.env) {
		backends = append(backends, fmt.Sprintf("%s\t%s", a.Name, getBackendDescription(a)))
	}

	return c.filterPrefix(backends, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{
		"table\tHuman readable table",
		"json\tJSON document",
		"yaml\tYAML document",
	}

	return c.filterPrefix(formats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteLogLevel(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	levels := []string{"debug", "info", "warn", "error", "disabled"}

	return c.filterPrefix(levels, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) filterPrefix(items []string, prefix string) []string {
	var result []string
	for _, item := range items {
		itemName := strings.Split(item, "\t")[0]
		if strings.HasPrefix(strings.ToLower(itemName), strings.ToLower(prefix)) {
			result = append(result, item)
		}
	}
	return result
}

func getBackendDescription(a clipboard.Availability) string {
	switch {
	case a.Selected:
		return "Available (auto-detected)"
	case a.Supported:
		return "Available"
	default:
		return "Not available in this session"
	}
}

func RegisterCompletions(rootCmd *cobra.Command, env clipboard.Environment) {
	completer := NewCompleter(env)

	rootCmd.RegisterFlagCompletionFunc("format", completer.CompleteFormat)
	rootCmd.RegisterFlagCompletionFunc("log-level", completer.CompleteLogLevel)

	copyCmd, _, _ := rootCmd.Find([]string{"copy"})
	if copyCmd != nil && copyCmd != rootCmd {
		copyCmd.RegisterFlagCompletionFunc("backend", completer.CompleteBackend)
	}
}

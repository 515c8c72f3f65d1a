package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(copyCmd)
	root.AddCommand(backendsCmd)
	root.AddCommand(configCmd)
}

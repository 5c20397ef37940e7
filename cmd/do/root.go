package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "do",
		Short:         "Task runner with structured console logging",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "do.yaml", "path to the config file")
	root.AddCommand(newRunCommand(), newVersionCommand())
	return root
}

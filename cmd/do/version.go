package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isabella232/dotnet-do/buildinfo"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			props := buildinfo.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "do %s (commit %s, built %s)\n",
				props.Version, props.GitCommit, props.BuildTime)
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) {
	v := version.Plain
	if useColor(cmd, os.Stdout) {
		v = version.Version
	}
	fmt.Fprintf(os.Stdout, "doclint %s\n", v)
	if version.GitCommit != "" {
		fmt.Fprintf(os.Stdout, "  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(os.Stdout, "  built:  %s\n", version.BuildDate)
	}
}

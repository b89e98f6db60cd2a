package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"pkt.systems/version"
)

func versionCmd(c *cli) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print module, version, and build information for the markup CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(c.stdout, version.Current())
				return
			}

			fmt.Fprintf(c.stdout, "  Module:     %s\n", version.Module())
			fmt.Fprintf(c.stdout, "  Version:    %s\n", version.Current())
			fmt.Fprintf(c.stdout, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(c.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version")

	return cmd
}

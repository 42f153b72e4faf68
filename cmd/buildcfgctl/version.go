package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"buildcfg/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("buildcfgctl %s (%s)\n", app.Version, app.Build)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"buildcfg/internal/domain"
)

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known build flags",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printFlagList(domain.Flags(), opts)
		},
	}
}

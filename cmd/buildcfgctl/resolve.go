package main

import (
	"github.com/spf13/cobra"

	"buildcfg/internal/infra/state"
)

func newResolveCmd(opts *cliOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve all build flags and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolution, err := newResolver(opts).Resolve(cmd.Context())
			if err != nil {
				return err
			}
			if save {
				path, err := statePath(opts)
				if err != nil {
					return err
				}
				store, err := state.Open(path)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				if err := store.Save(resolution); err != nil {
					return err
				}
			}
			return printResolution(resolution, opts)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "record this resolution in the cache")
	return cmd
}

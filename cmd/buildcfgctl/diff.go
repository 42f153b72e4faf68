package main

import (
	"github.com/spf13/cobra"

	"buildcfg/internal/domain"
	"buildcfg/internal/infra/state"
)

const (
	exitNoBaseline   = 2
	exitFlagsChanged = 4
)

func newDiffCmd(opts *cliOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the current resolution with the cached one (exit 4 on change)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := statePath(opts)
			if err != nil {
				return err
			}
			store, err := state.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			last, found, err := store.Last()
			if err != nil {
				return err
			}
			if !found {
				return exitWithMessage(exitNoBaseline, "no cached resolution; run 'buildcfgctl resolve --save' first")
			}

			resolution, err := newResolver(opts).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			diff := domain.DiffOptions(last.Options, resolution.Options)
			if save {
				if err := store.Save(resolution); err != nil {
					return err
				}
			}
			if err := printDiff(diff, opts); err != nil {
				return err
			}
			if !diff.IsEmpty() {
				return exitSilent(exitFlagsChanged)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "record the new resolution in the cache")
	return cmd
}

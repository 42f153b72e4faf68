package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"buildcfg/internal/domain"
)

const exitFlagDisabled = 3

func newGetCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <flag>",
		Short: "Print one resolved flag (exit 3 when disabled)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !domain.IsKnownFlag(name) {
				return fmt.Errorf("unknown flag %q; see 'buildcfgctl list'", name)
			}

			resolution, err := newResolver(opts).Resolve(cmd.Context())
			if err != nil {
				return err
			}
			setting, _ := resolution.Setting(name)

			if opts.jsonOutput {
				if err := writeJSON(setting); err != nil {
					return err
				}
			} else {
				fmt.Printf("%t\n", setting.Value)
			}
			if !setting.Value {
				return exitSilent(exitFlagDisabled)
			}
			return nil
		},
	}
	return cmd
}

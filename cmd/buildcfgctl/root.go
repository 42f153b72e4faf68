package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"buildcfg/internal/app"
	"buildcfg/internal/infra/presets"
)

type cliOptions struct {
	presetsPath string
	statePath   string
	jsonOutput  bool
	yamlOutput  bool
	verbose     bool
	logger      *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		presetsPath: presets.DefaultFileName,
		logger:      zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "buildcfgctl",
		Short: "Resolve build-option flags from the environment and presets",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyRootFlagBindings(cmd, &opts)
			if err := validateOutputFlags(&opts); err != nil {
				return err
			}
			logger, err := app.NewLogger(app.LoggingConfig{Verbose: opts.verbose})
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.presetsPath, "presets", opts.presetsPath, "path to the presets file")
	root.PersistentFlags().StringVar(&opts.statePath, "state", "", "path to the resolution cache (defaults to the user cache dir)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().BoolVar(&opts.yamlOutput, "yaml", false, "output YAML")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newResolveCmd(&opts),
		newGetCmd(&opts),
		newListCmd(&opts),
		newDiffCmd(&opts),
		newWatchCmd(&opts),
		newVersionCmd(),
	)

	return root
}

func applyRootFlagBindings(cmd *cobra.Command, opts *cliOptions) {
	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "presets":
			opts.presetsPath, _ = flags.GetString("presets")
		case "state":
			opts.statePath, _ = flags.GetString("state")
		case "json":
			opts.jsonOutput, _ = flags.GetBool("json")
		case "yaml":
			opts.yamlOutput, _ = flags.GetBool("yaml")
		case "verbose":
			opts.verbose, _ = flags.GetBool("verbose")
		}
	})
}

func validateOutputFlags(opts *cliOptions) error {
	if opts.jsonOutput && opts.yamlOutput {
		return errors.New("--json and --yaml are mutually exclusive")
	}
	return nil
}

func newResolver(opts *cliOptions) *app.Resolver {
	return app.NewResolver(app.ResolveConfig{PresetsPath: opts.presetsPath}, opts.logger)
}

func statePath(opts *cliOptions) (string, error) {
	if opts.statePath != "" {
		return opts.statePath, nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "buildcfg", "state.db"), nil
}

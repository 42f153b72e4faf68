// Package presets loads optional per-project flag presets from a YAML
// file. Presets sit between compiled defaults and environment variables:
// a preset overrides the default, the environment overrides the preset.
package presets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"buildcfg/internal/domain"
)

// DefaultFileName is the presets file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "build.yaml"

// Presets holds flag values declared in a presets file.
type Presets struct {
	// Flags maps registered flag names to preset values.
	Flags map[string]bool
}

// Value returns the preset for a flag name, if declared.
func (p Presets) Value(name string) (bool, bool) {
	value, ok := p.Flags[name]
	return value, ok
}

type rawPresets struct {
	Flags map[string]bool `mapstructure:"flags"`
}

// Loader reads and validates presets files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a presets loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("presets")}
}

func newPresetsViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	return v
}

// Load reads the presets file at path. A missing file is not an error;
// it yields empty presets, since presets are optional. Unknown flag names
// and non-boolean values fail loudly: a presets file states explicit
// intent, unlike the permissive environment lookup.
func (l *Loader) Load(ctx context.Context, path string) (Presets, error) {
	if path == "" {
		return Presets{}, errors.New("presets path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug("no presets file", zap.String("path", path))
			return Presets{}, nil
		}
		return Presets{}, fmt.Errorf("read presets: %w", err)
	}

	v := newPresetsViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Presets{}, fmt.Errorf("parse presets: %w", err)
	}

	var cfg rawPresets
	if err := v.Unmarshal(&cfg); err != nil {
		return Presets{}, fmt.Errorf("decode presets: %w", err)
	}

	if errs := validateFlagNames(cfg.Flags); len(errs) > 0 {
		return Presets{}, errors.New(strings.Join(errs, "; "))
	}

	l.logger.Debug("presets loaded", zap.String("path", path), zap.Int("flags", len(cfg.Flags)))
	return Presets{Flags: cfg.Flags}, ctx.Err()
}

func validateFlagNames(flags map[string]bool) []string {
	var unknown []string
	for name := range flags {
		if !domain.IsKnownFlag(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	known := make([]string, 0, len(domain.Flags()))
	for _, flag := range domain.Flags() {
		known = append(known, flag.Name)
	}

	errs := make([]string, 0, len(unknown))
	for _, name := range unknown {
		errs = append(errs, fmt.Sprintf("flags: unknown flag %q (known flags: %s)", name, strings.Join(known, ", ")))
	}
	return errs
}

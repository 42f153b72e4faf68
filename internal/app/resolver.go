package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildcfg/internal/domain"
	"buildcfg/internal/infra/envflag"
	"buildcfg/internal/infra/presets"
)

// ResolveConfig configures a Resolver.
type ResolveConfig struct {
	// PresetsPath locates the optional presets file.
	PresetsPath string
}

// Resolver produces immutable build-option resolutions. Precedence per
// flag: environment variable, then presets file, then compiled default.
type Resolver struct {
	logger      *zap.Logger
	loader      *presets.Loader
	presetsPath string
}

// NewResolver constructs a resolver.
func NewResolver(cfg ResolveConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := cfg.PresetsPath
	if path == "" {
		path = presets.DefaultFileName
	}
	return &Resolver{
		logger:      logger.Named("resolver"),
		loader:      presets.NewLoader(logger),
		presetsPath: path,
	}
}

// Resolve snapshots the process environment and resolves every registered
// flag against it.
func (r *Resolver) Resolve(ctx context.Context) (domain.Resolution, error) {
	return r.ResolveWith(ctx, envflag.Capture())
}

// ResolveWith resolves against an explicit environment snapshot. Every
// flag is resolved from the same snapshot, so the result is a pure
// function of it and the presets file.
func (r *Resolver) ResolveWith(ctx context.Context, snapshot envflag.Snapshot) (domain.Resolution, error) {
	loaded, err := r.loader.Load(ctx, r.presetsPath)
	if err != nil {
		return domain.Resolution{}, err
	}

	resolution := domain.Resolution{
		ID:         uuid.NewString(),
		ResolvedAt: time.Now().UTC(),
	}

	for _, flag := range domain.Flags() {
		setting := resolveFlag(flag, snapshot, loaded)
		resolution.Settings = append(resolution.Settings, setting)
		applySetting(&resolution.Options, flag, setting.Value)
		r.logger.Debug("flag resolved",
			zap.String("flag", flag.Name),
			zap.String("env_var", flag.EnvVar),
			zap.Bool("value", setting.Value),
			zap.String("source", string(setting.Source)),
		)
	}

	r.logger.Info("build options resolved",
		zap.String("resolution_id", resolution.ID),
		zap.String("presets", r.presetsPath),
	)
	return resolution, ctx.Err()
}

func resolveFlag(flag domain.Flag, snapshot envflag.Snapshot, loaded presets.Presets) domain.Setting {
	if raw, ok := snapshot.Lookup(flag.EnvVar); ok {
		value := snapshot.Check(flag.EnvVar)
		if flag.Negative {
			value = !snapshot.CheckNegative(flag.EnvVar)
		}
		return domain.Setting{Flag: flag.Name, Value: value, Source: domain.SourceEnv, Raw: raw}
	}
	if value, ok := loaded.Value(flag.Name); ok {
		return domain.Setting{Flag: flag.Name, Value: value, Source: domain.SourcePresets}
	}
	return domain.Setting{Flag: flag.Name, Value: flag.Default, Source: domain.SourceDefault}
}

func applySetting(options *domain.Options, flag domain.Flag, value bool) {
	switch flag.Name {
	case domain.FlagBinary.Name:
		options.BuildBinary = value
	case domain.FlagTest.Name:
		options.BuildTest = value
	case domain.FlagCaffe2Ops.Name:
		options.BuildCaffe2Ops = value
	case domain.FlagLevelDB.Name:
		options.UseLevelDB = value
	case domain.FlagLMDB.Name:
		options.UseLMDB = value
	case domain.FlagOpenCV.Name:
		options.UseOpenCV = value
	case domain.FlagFFmpeg.Name:
		options.UseFFmpeg = value
	}
}

package domain

import "time"

// Source identifies where a resolved flag value came from.
type Source string

const (
	SourceEnv     Source = "env"
	SourcePresets Source = "presets"
	SourceDefault Source = "default"
)

// Options is the immutable record of resolved build options. It is
// constructed once per resolution pass and handed to consumers by value;
// nothing mutates it afterwards.
type Options struct {
	BuildBinary    bool `json:"buildBinary" yaml:"buildBinary"`
	BuildTest      bool `json:"buildTest" yaml:"buildTest"`
	BuildCaffe2Ops bool `json:"buildCaffe2Ops" yaml:"buildCaffe2Ops"`
	UseLevelDB     bool `json:"useLevelDB" yaml:"useLevelDB"`
	UseLMDB        bool `json:"useLMDB" yaml:"useLMDB"`
	UseOpenCV      bool `json:"useOpenCV" yaml:"useOpenCV"`
	UseFFmpeg      bool `json:"useFFmpeg" yaml:"useFFmpeg"`
}

// Value returns the option value for a registered flag name.
func (o Options) Value(name string) (bool, bool) {
	switch name {
	case FlagBinary.Name:
		return o.BuildBinary, true
	case FlagTest.Name:
		return o.BuildTest, true
	case FlagCaffe2Ops.Name:
		return o.BuildCaffe2Ops, true
	case FlagLevelDB.Name:
		return o.UseLevelDB, true
	case FlagLMDB.Name:
		return o.UseLMDB, true
	case FlagOpenCV.Name:
		return o.UseOpenCV, true
	case FlagFFmpeg.Name:
		return o.UseFFmpeg, true
	default:
		return false, false
	}
}

// Setting records how one flag resolved.
type Setting struct {
	Flag   string `json:"flag"`
	Value  bool   `json:"value"`
	Source Source `json:"source"`
	// Raw is the environment variable value when Source is env.
	Raw string `json:"raw,omitempty"`
}

// Resolution is one complete resolver pass over the environment and
// presets file.
type Resolution struct {
	ID         string    `json:"id"`
	ResolvedAt time.Time `json:"resolvedAt"`
	Options    Options   `json:"options"`
	Settings   []Setting `json:"settings"`
}

// Setting returns the per-flag record for a registered flag name.
func (r Resolution) Setting(name string) (Setting, bool) {
	for _, setting := range r.Settings {
		if setting.Flag == name {
			return setting, true
		}
	}
	return Setting{}, false
}

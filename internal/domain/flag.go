package domain

// Environment variable names recognized by the resolver.
const (
	EnvBuildBinary    = "BUILD_BINARY"
	EnvBuildTest      = "BUILD_TEST"
	EnvBuildCaffe2Ops = "BUILD_CAFFE2_OPS"
	EnvUseLevelDB     = "USE_LEVELDB"
	EnvUseLMDB        = "USE_LMDB"
	EnvUseOpenCV      = "USE_OPENCV"
	EnvUseFFmpeg      = "USE_FFMPEG"
)

// Flag describes one build option known to the resolver.
//
// Affirmative flags default to off and are enabled by setting the
// environment variable to a recognized true string. Negative flags default
// to on and are disabled by setting the variable to a recognized false
// string; any other value leaves them on.
type Flag struct {
	Name        string
	EnvVar      string
	Default     bool
	Negative    bool
	Description string
}

// Known build flags.
var (
	FlagBinary = Flag{
		Name:        "binary",
		EnvVar:      EnvBuildBinary,
		Default:     false,
		Description: "Build the standalone binary",
	}
	FlagTest = Flag{
		Name:        "test",
		EnvVar:      EnvBuildTest,
		Default:     true,
		Negative:    true,
		Description: "Build test targets",
	}
	FlagCaffe2Ops = Flag{
		Name:        "caffe2-ops",
		EnvVar:      EnvBuildCaffe2Ops,
		Default:     true,
		Negative:    true,
		Description: "Build the secondary operator library",
	}
	FlagLevelDB = Flag{
		Name:        "leveldb",
		EnvVar:      EnvUseLevelDB,
		Default:     false,
		Description: "Link LevelDB support",
	}
	FlagLMDB = Flag{
		Name:        "lmdb",
		EnvVar:      EnvUseLMDB,
		Default:     false,
		Description: "Link LMDB support",
	}
	FlagOpenCV = Flag{
		Name:        "opencv",
		EnvVar:      EnvUseOpenCV,
		Default:     false,
		Description: "Link OpenCV support",
	}
	FlagFFmpeg = Flag{
		Name:        "ffmpeg",
		EnvVar:      EnvUseFFmpeg,
		Default:     false,
		Description: "Link FFmpeg support",
	}
)

// allFlags is the registry of known flags, in display order.
var allFlags = []Flag{
	FlagBinary,
	FlagTest,
	FlagCaffe2Ops,
	FlagLevelDB,
	FlagLMDB,
	FlagOpenCV,
	FlagFFmpeg,
}

var flagsByName = buildFlagIndex()

func buildFlagIndex() map[string]Flag {
	index := make(map[string]Flag, len(allFlags))
	for _, flag := range allFlags {
		index[flag.Name] = flag
	}
	return index
}

// Flags returns a copy of the flag registry in display order.
func Flags() []Flag {
	out := make([]Flag, len(allFlags))
	copy(out, allFlags)
	return out
}

// FlagByName looks up a flag by its short name.
func FlagByName(name string) (Flag, bool) {
	flag, ok := flagsByName[name]
	return flag, ok
}

// IsKnownFlag reports whether name is a registered flag name.
func IsKnownFlag(name string) bool {
	_, ok := flagsByName[name]
	return ok
}

package presets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPresets(t *testing.T) {
	path := writePresets(t, `
flags:
  binary: true
  test: false
  opencv: true
`)

	loader := NewLoader(zap.NewNop())
	presets, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	expect := map[string]bool{
		"binary": true,
		"test":   false,
		"opencv": true,
	}
	if diff := cmp.Diff(expect, presets.Flags); diff != "" {
		t.Fatalf("presets mismatch (-want +got):\n%s", diff)
	}

	value, ok := presets.Value("binary")
	require.True(t, ok)
	require.True(t, value)

	_, ok = presets.Value("leveldb")
	require.False(t, ok)
}

func TestLoadMissingFileYieldsEmptyPresets(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	presets, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Empty(t, presets.Flags)
}

func TestLoadRejectsUnknownFlagNames(t *testing.T) {
	path := writePresets(t, `
flags:
  binary: true
  cudnn: true
`)

	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown flag "cudnn"`)
}

func TestLoadRejectsNonBooleanValues(t *testing.T) {
	path := writePresets(t, `
flags:
  binary: maybe
`)

	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writePresets(t, "flags: [unclosed")

	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoadRequiresPath(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), "")
	require.Error(t, err)
}

package envflag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckUnsetReturnsFalse(t *testing.T) {
	snapshot := NewSnapshot(nil)
	require.False(t, snapshot.Check("BUILD_BINARY"))
	require.False(t, snapshot.CheckNegative("BUILD_TEST"))
}

func TestCheckDefaultUnset(t *testing.T) {
	snapshot := NewSnapshot(nil)
	require.True(t, snapshot.CheckDefault("BUILD_BINARY", true))
	require.False(t, snapshot.CheckDefault("BUILD_BINARY", false))
}

func TestCheckAffirmativeValues(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "True", "yes", "YES", "on", "On", " true "} {
		snapshot := NewSnapshot(map[string]string{"BUILD_BINARY": value})
		require.True(t, snapshot.Check("BUILD_BINARY"), "value %q", value)
	}
}

func TestCheckUnrecognizedValuesResolveFalse(t *testing.T) {
	for _, value := range []string{"", "2", "enabled", "y", "t", "truex", "0", "off"} {
		snapshot := NewSnapshot(map[string]string{"BUILD_BINARY": value})
		require.False(t, snapshot.Check("BUILD_BINARY"), "value %q", value)
	}
}

func TestCheckNegativeValues(t *testing.T) {
	for _, value := range []string{"0", "false", "FALSE", "False", "no", "NO", "off", "Off", " off "} {
		snapshot := NewSnapshot(map[string]string{"BUILD_TEST": value})
		require.True(t, snapshot.CheckNegative("BUILD_TEST"), "value %q", value)
	}
}

func TestCheckNegativeUnrecognizedValuesResolveFalse(t *testing.T) {
	for _, value := range []string{"", "1", "true", "disabled", "n", "f", "offx"} {
		snapshot := NewSnapshot(map[string]string{"BUILD_TEST": value})
		require.False(t, snapshot.CheckNegative("BUILD_TEST"), "value %q", value)
	}
}

func TestCaptureSeesProcessEnvironment(t *testing.T) {
	t.Setenv("BUILDCFG_TEST_FLAG", "yes")
	snapshot := Capture()
	require.True(t, snapshot.Check("BUILDCFG_TEST_FLAG"))

	raw, ok := snapshot.Lookup("BUILDCFG_TEST_FLAG")
	require.True(t, ok)
	require.Equal(t, "yes", raw)
}

func TestSnapshotIsImmutable(t *testing.T) {
	t.Setenv("BUILDCFG_TEST_FLAG", "yes")
	snapshot := Capture()
	t.Setenv("BUILDCFG_TEST_FLAG", "no")
	require.True(t, snapshot.Check("BUILDCFG_TEST_FLAG"))
}

func TestNewSnapshotCopiesInput(t *testing.T) {
	values := map[string]string{"USE_LEVELDB": "on"}
	snapshot := NewSnapshot(values)
	values["USE_LEVELDB"] = "off"
	require.True(t, snapshot.Check("USE_LEVELDB"))
}

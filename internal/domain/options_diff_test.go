package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffOptionsEmpty(t *testing.T) {
	options := Options{BuildTest: true, BuildCaffe2Ops: true}
	diff := DiffOptions(options, options)
	require.True(t, diff.IsEmpty())
	require.Empty(t, diff.Changed)
}

func TestDiffOptionsChanged(t *testing.T) {
	prev := Options{BuildTest: true, BuildCaffe2Ops: true}
	next := Options{BuildBinary: true, BuildTest: false, BuildCaffe2Ops: true, UseOpenCV: true}

	diff := DiffOptions(prev, next)
	require.False(t, diff.IsEmpty())
	require.Equal(t, []string{"binary", "test", "opencv"}, diff.Changed)
}

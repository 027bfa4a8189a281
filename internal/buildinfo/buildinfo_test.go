package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	require.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestPrintBuildData_Set(t *testing.T) {
	origV, origD, origC := BuildVersion, BuildDate, BuildCommit
	t.Cleanup(func() { BuildVersion, BuildDate, BuildCommit = origV, origD, origC })
	BuildVersion, BuildDate, BuildCommit = "v1.2.3", "2026-08-29", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)
	require.Equal(t, "Build version: v1.2.3\nBuild date: 2026-08-29\nBuild commit: abc123\n", buf.String())
}

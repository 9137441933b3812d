package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runVersion executes the version command with the given extra args and
// returns its output, restoring the build info afterwards.
func runVersion(t *testing.T, args ...string) string {
	t.Helper()

	originalVersion, originalCommit, originalDate := version, commit, date
	version, commit, date = "1.2.3", "abc1234", "2025-06-01"
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
		versionShort = false
		rootCmd.SetArgs(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append([]string{"version"}, args...))

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCmd_PrintsBuildInfo(t *testing.T) {
	out := runVersion(t)

	assert.Equal(t, "canopy version 1.2.3 (commit abc1234, built 2025-06-01)\n", out)
}

func TestVersionCmd_ShortFlag(t *testing.T) {
	out := runVersion(t, "--short")

	assert.Equal(t, "1.2.3\n", out)
}

func TestSetVersionInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2025-06-01")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2025-06-01", date)
}

func TestSetVersionInfo_IgnoresEmptyValues(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	}()

	version, commit, date = "1.0.0", "abc", "yesterday"
	SetVersionInfo("", "", "")

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc", commit)
	assert.Equal(t, "yesterday", date)
}

package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVersion(t *testing.T, v string, args ...string) string {
	t.Helper()
	prev := version
	version = v
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append([]string{"version"}, args...))
	t.Cleanup(func() {
		version = prev
		versionShort = false
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCmd(t *testing.T) {
	out := runVersion(t, "1.2.3")

	assert.Contains(t, out, "assist version 1.2.3")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "dev\n", runVersion(t, "dev", "--short"))
}

package shellrc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportLine = `export PATH="$HOME/.local/bin:$PATH"`

func TestEnsureLinePresent(t *testing.T) {
	t.Run("creates file and appends when absent", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".zshrc")

		added, err := EnsureLinePresent(rc, exportLine)
		require.NoError(t, err)
		assert.True(t, added)

		data, err := os.ReadFile(rc)
		require.NoError(t, err)
		assert.Equal(t, exportLine+"\n", string(data))
	})

	t.Run("is idempotent", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".zshrc")

		for i := 0; i < 3; i++ {
			_, err := EnsureLinePresent(rc, exportLine)
			require.NoError(t, err)
		}

		data, err := os.ReadFile(rc)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), exportLine))
	})

	t.Run("second call reports no append", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".zshrc")

		added, err := EnsureLinePresent(rc, exportLine)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = EnsureLinePresent(rc, exportLine)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("preserves existing content", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".zshrc")
		require.NoError(t, os.WriteFile(rc, []byte("alias ll='ls -al'\n"), 0644))

		added, err := EnsureLinePresent(rc, exportLine)
		require.NoError(t, err)
		assert.True(t, added)

		data, err := os.ReadFile(rc)
		require.NoError(t, err)
		assert.Equal(t, "alias ll='ls -al'\n"+exportLine+"\n", string(data))
	})

	t.Run("matches indented copies of the line", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".zshrc")
		require.NoError(t, os.WriteFile(rc, []byte("  "+exportLine+"  \n"), 0644))

		added, err := EnsureLinePresent(rc, exportLine)
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestHasLine(t *testing.T) {
	t.Run("missing file has no lines", func(t *testing.T) {
		present, err := HasLine(filepath.Join(t.TempDir(), "nope"), exportLine)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("finds exact line among others", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".bashrc")
		content := "# paths\n" + exportLine + "\nalias gs='git status'\n"
		require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

		present, err := HasLine(rc, exportLine)
		require.NoError(t, err)
		assert.True(t, present)
	})

	t.Run("substring of a longer line does not count", func(t *testing.T) {
		rc := filepath.Join(t.TempDir(), ".bashrc")
		require.NoError(t, os.WriteFile(rc, []byte(exportLine+" # managed\n"), 0644))

		present, err := HasLine(rc, exportLine)
		require.NoError(t, err)
		assert.False(t, present)
	})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  string
	}{
		{name: "zsh", shell: "/bin/zsh", want: "zsh"},
		{name: "bash", shell: "/usr/bin/bash", want: "bash"},
		{name: "unknown falls back to zsh", shell: "/bin/fish", want: "zsh"},
		{name: "empty falls back to zsh", shell: "", want: "zsh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)
			assert.Equal(t, tt.want, Detect())
		})
	}
}

func TestStartupFile(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/bash")
	assert.Equal(t, "/home/dev/.bashrc", StartupFile("/home/dev"))

	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, "/home/dev/.zshrc", StartupFile("/home/dev"))
}

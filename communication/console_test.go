package communication

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"warzone/engine"
	"warzone/player"
)

var (
	_ engine.CommandSource = (*Console)(nil)
	_ player.Prompter      = (*Console)(nil)
	_ engine.CommandSource = (*File)(nil)
)

func TestConsole(t *testing.T) {
	t.Run("skips blanks and comments", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("loadmap switzerland\n\n# setup\n  validatemap  \n"), &out)

		line, ok := c.Next()
		require.True(t, ok)
		require.Equal(t, "loadmap switzerland", line)

		line, ok = c.Next()
		require.True(t, ok)
		require.Equal(t, "validatemap", line, "Lines are trimmed")

		_, ok = c.Next()
		require.False(t, ok)
		require.NoError(t, c.Err())
		require.Contains(t, out.String(), "> ")
	})

	t.Run("prompts share the command stream", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("gamestart\ndeploy Bern 3\n"), &out)

		_, _ = c.Next()
		line, ok := c.Prompt("alice> ")

		require.True(t, ok)
		require.Equal(t, "deploy Bern 3", line)
		c.Say("%d armies left", 0)
		require.Contains(t, out.String(), "alice> ")
		require.Contains(t, out.String(), "0 armies left\n")
	})
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("loadmap switzerland\nvalidatemap\n"), 0o644))
	var out bytes.Buffer

	f, err := OpenFile(path, &out)
	require.NoError(t, err)
	defer f.Close()

	var read []string
	for {
		line, ok := f.Next()
		if !ok {
			break
		}
		read = append(read, line)
	}
	require.Equal(t, []string{"loadmap switzerland", "validatemap"}, read)
	require.Contains(t, out.String(), "> validatemap\n", "Lines are echoed")

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing.txt"), &out)
	require.Error(t, err)
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list", "--max", "8", "--scheme", "batcher")
	require.NoError(t, err)
	for _, want := range []string{"SCHEME", "batcher", "19"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "bubble")

	_, err = execute(t, "", "list", "--max", "0")
	require.Error(t, err)
	_, err = execute(t, "", "list", "--scheme", "nope")
	require.Error(t, err)
}

func TestShowCommand_Text(t *testing.T) {
	out, err := execute(t, "", "show", "3", "--scheme", "bose-nelson")
	require.NoError(t, err)
	assert.Equal(t, "0 ----o--o-\n1 -o--|--o-\n2 -o--o----\n", out)
}

func TestShowCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "show", "8", "-s", "bitonic", "-f", "json")
	require.NoError(t, err)
	var doc struct {
		N, Size, Depth int
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 8, doc.N)
	assert.Equal(t, 24, doc.Size)
	assert.Equal(t, 6, doc.Depth)
}

func TestShowCommand_DOTToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.dot")
	out, err := execute(t, "", "show", "4", "-s", "insertion", "-f", "dot", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "digraph G {"))
}

func TestShowCommand_Errors(t *testing.T) {
	_, err := execute(t, "", "show", "six")
	require.Error(t, err)
	_, err = execute(t, "", "show", "6", "-s", "batcher")
	require.Error(t, err)
	_, err = execute(t, "", "show", "4", "-f", "gif")
	require.Error(t, err)
}

func TestShowCommand_ConfigDefaults(t *testing.T) {
	path := writeConfig(t, "scheme = \"batcher\"\nformat = \"json\"\n")
	out, err := execute(t, "", "--config", path, "show", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"size": 5`)

	// Flags win over the file.
	out, err = execute(t, "", "--config", path, "show", "4", "-f", "text", "-s", "bubble")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0 -o"))

	_, err = execute(t, "", "--config", writeConfig(t, `workers = -1`), "show", "4")
	require.ErrorIs(t, err, ErrConfig)
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "", "verify", "--max", "10", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "size-optimized n=10")
	assert.Contains(t, out, "batcher n=8")
	assert.NotContains(t, out, "batcher n=6")
	assert.NotContains(t, out, iconError)

	_, err = execute(t, "", "verify", "--max", "40")
	require.Error(t, err)
}

func TestSortCommand_Args(t *testing.T) {
	out, err := execute(t, "", "sort", "-s", "batcher", "4", "3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4\n", out)

	out, err = execute(t, "", "sort", "-d", "1.5", "3", "2")
	require.NoError(t, err)
	assert.Equal(t, "3 2 1.5\n", out)
}

func TestSortCommand_Stdin(t *testing.T) {
	in := "5 4 3 2 1\n\n9 8 7\n1 1 0 1 0\n42\n"
	out, err := execute(t, in, "sort", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5\n7 8 9\n0 0 1 1 1\n42\n", out)

	_, err = execute(t, "1 x 3\n", "sort")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, err = execute(t, "", "sort", "-s", "batcher", "3", "2", "1")
	require.Error(t, err)
}

package extractor

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub extractor scripts require a POSIX shell")
	}
}

func TestCommandExtract(t *testing.T) {
	requireShell(t)

	// Stub extractor: drain stdin, answer with a fixed result.
	script := `cat >/dev/null; printf '%s' '{"db.t":{"schema":"db","table":"t","columns":{"id":{"lineage":[{"schema":"db","table":"src","column":"id","expression":"id"}]}}}}'`
	cmd := NewCommand("sh", "-c", script)

	result, err := cmd.ExtractStatementsLineage(context.Background(), "SELECT id FROM t", "")
	require.NoError(t, err)

	require.Contains(t, result, "db.t")
	table := result["db.t"]
	assert.Equal(t, "db", table.Schema)
	require.Contains(t, table.Columns, "id")
	require.Len(t, table.Columns["id"].Lineage, 1)
	assert.Equal(t, "src", table.Columns["id"].Lineage[0].Table)
}

func TestCommandExtractFailure(t *testing.T) {
	requireShell(t)

	cmd := NewCommand("sh", "-c", `echo "boom: unsupported statement" >&2; exit 3`)

	result, err := cmd.ExtractStatementsLineage(context.Background(), "SELECT 1", "")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom: unsupported statement")
}

func TestCommandExtractBadOutput(t *testing.T) {
	requireShell(t)

	cmd := NewCommand("sh", "-c", `cat >/dev/null; echo "not json"`)

	_, err := cmd.ExtractStatementsLineage(context.Background(), "SELECT 1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestCommandDialectFlag(t *testing.T) {
	requireShell(t)

	// Echo the received arguments back as the "schema" so the test can
	// observe whether --dialect was appended.
	script := `cat >/dev/null; printf '{"args":{"schema":"%s","table":"","columns":{}}}' "$*"`
	cmd := NewCommand("sh", "-c", script, "sh")

	result, err := cmd.ExtractStatementsLineage(context.Background(), "SELECT 1", "hive")
	require.NoError(t, err)
	require.Contains(t, result, "args")
	assert.Contains(t, result["args"].Schema, "--dialect hive")
}

func TestNewSelectsImplementation(t *testing.T) {
	t.Run("default is embedded", func(t *testing.T) {
		ex, err := New(Config{})
		require.NoError(t, err)
		assert.IsType(t, &Embedded{}, ex)
	})

	t.Run("remote requires endpoint", func(t *testing.T) {
		_, err := New(Config{Mode: ModeRemote})
		assert.Error(t, err)

		ex, err := New(Config{Mode: ModeRemote, Endpoint: "http://localhost:9000/lineage"})
		require.NoError(t, err)
		assert.IsType(t, &Remote{}, ex)
	})

	t.Run("command requires executable", func(t *testing.T) {
		_, err := New(Config{Mode: ModeCommand})
		assert.Error(t, err)

		ex, err := New(Config{Mode: ModeCommand, Command: "sqlmetadata"})
		require.NoError(t, err)
		assert.IsType(t, &Command{}, ex)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := New(Config{Mode: "carrier-pigeon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}

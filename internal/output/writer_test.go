package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

func sampleRows() []lineage.Row {
	return []lineage.Row{
		{
			Filename:         "daily.sql",
			DatabaseName:     "hive",
			SchemaName:       "analytics",
			TableName:        "daily",
			ColumnName:       "id",
			ColumnDataType:   "NA",
			Expression:       "id",
			SourceTableName:  "orders",
			SourceColumnName: "id",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, lineage.Columns, records[0])
	assert.Equal(t, "daily.sql", records[1][0])
	assert.Equal(t, "hive", records[1][1])
	assert.Equal(t, "id", records[1][5])
	assert.Equal(t, "orders", records[1][12])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(lineage.Columns, ","), lines[0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRows()))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "daily", decoded[0]["table_name"])
	assert.Equal(t, "orders", decoded[0]["source_table_name"])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, sampleRows()))

	out := buf.String()
	assert.Contains(t, out, "TABLE_NAME")
	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "(1 rows)")
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, nil))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "parquet", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet")
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o600))

	require.NoError(t, WriteFile(path, FormatCSV, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.True(t, strings.HasPrefix(string(data), "filename,"))
}

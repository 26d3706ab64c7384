// Package output serializes the flattened lineage table.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

// Supported output formats.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatTable}
}

// WriteFile serializes rows to path in the given format, overwriting any
// existing file.
func WriteFile(path, format string, rows []lineage.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write serializes rows to w. An empty format means CSV.
func Write(w io.Writer, format string, rows []lineage.Row) error {
	switch format {
	case "", FormatCSV:
		return writeCSV(w, rows)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatTable:
		return writeTable(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeCSV(w io.Writer, rows []lineage.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(lineage.Columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows []lineage.Row) error {
	if rows == nil {
		rows = []lineage.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeTable(w io.Writer, rows []lineage.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(lineage.Columns))
	for i, col := range lineage.Columns {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		values := row.Values()
		prettyRow := make(table.Row, len(values))
		for i, v := range values {
			prettyRow[i] = v
		}
		t.AppendRow(prettyRow)
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return err
}

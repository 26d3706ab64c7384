package lineage

import (
	"context"
	"errors"
)

// Result maps fully-qualified table names to their lineage details.
// It is produced by an Extractor and treated as read-only input here.
type Result map[string]Table

// Table describes one destination table in an extraction result.
type Table struct {
	Schema  string            `json:"schema"`
	Table   string            `json:"table"`
	Columns map[string]Column `json:"columns"`
}

// Column describes one destination column and where its value comes from.
type Column struct {
	DataType string `json:"data_type,omitempty"`
	Lineage  []Item `json:"lineage,omitempty"`
}

// Item is a single source contributing to a destination column.
type Item struct {
	Schema     string `json:"schema"`
	Table      string `json:"table"`
	Column     string `json:"column"`
	Expression string `json:"expression"`
	FilterType string `json:"filter_type"`
	Filter     string `json:"filter"`
	Message    string `json:"message"`
}

// ErrLineageNotFound is returned when the extractor produced no lineage
// for a statement.
var ErrLineageNotFound = errors.New("column lineage not found")

// Extractor resolves column-level lineage for a SQL statement. An empty
// dialect lets the implementation auto-detect.
type Extractor interface {
	ExtractStatementsLineage(ctx context.Context, sqlStmt, dialect string) (Result, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, sqlStmt, dialect string) (Result, error)

// ExtractStatementsLineage implements Extractor.
func (f ExtractorFunc) ExtractStatementsLineage(ctx context.Context, sqlStmt, dialect string) (Result, error) {
	return f(ctx, sqlStmt, dialect)
}

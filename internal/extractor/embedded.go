package extractor

import (
	"context"
	"fmt"
	"strings"

	liblineage "github.com/leapstack-labs/leapsql/pkg/lineage"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

// Embedded runs the LeapSQL lineage library in-process. The library owns
// all parsing and column resolution; this type only reshapes its result
// into the wire format.
type Embedded struct{}

// NewEmbedded returns the in-process extractor.
func NewEmbedded() *Embedded {
	return &Embedded{}
}

// ExtractStatementsLineage implements lineage.Extractor. The embedded
// library auto-detects the dialect, so a non-empty hint is rejected
// rather than silently ignored.
func (e *Embedded) ExtractStatementsLineage(_ context.Context, sqlStmt, dialect string) (lineage.Result, error) {
	if dialect != "" {
		return nil, fmt.Errorf("embedded extractor does not accept a dialect hint (%q); configure a remote or command extractor for dialect-specific parsing", dialect)
	}

	ml, err := liblineage.ExtractLineageWithOptions(sqlStmt, liblineage.ExtractLineageOptions{})
	if err != nil {
		return nil, err
	}
	if ml == nil || len(ml.Columns) == 0 {
		return lineage.Result{}, nil
	}

	columns := make(map[string]lineage.Column, len(ml.Columns))
	for _, col := range ml.Columns {
		if col == nil {
			continue
		}
		var items []lineage.Item
		for _, src := range col.Sources {
			schema, table := splitQualified(src.Table)
			expression := src.Column
			if col.Function != "" {
				expression = col.Function
			}
			items = append(items, lineage.Item{
				Schema:     schema,
				Table:      table,
				Column:     src.Column,
				Expression: expression,
			})
		}
		columns[col.Name] = lineage.Column{Lineage: items}
	}

	// The library analyzes SELECTs and names no destination table; the
	// flattening layer fills schema/table from the caller's metadata.
	return lineage.Result{"": {Columns: columns}}, nil
}

// splitQualified splits a possibly schema-qualified table name on its
// last dot.
func splitQualified(name string) (schema, table string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

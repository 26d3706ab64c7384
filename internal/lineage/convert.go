package lineage

import (
	"context"
	"fmt"
	"sort"
)

// Convert invokes the extractor once for the statement and flattens the
// nested result into rows. Tables and columns are visited in sorted name
// order so output is deterministic; lineage items keep their reported
// order. It returns ErrLineageNotFound when the extractor produced an
// empty result; extractor failures propagate wrapped, never recovered.
func Convert(ctx context.Context, ex Extractor, sqlStmt, dialect string, meta Metadata) ([]Row, error) {
	result, err := ex.ExtractStatementsLineage(ctx, sqlStmt, dialect)
	if err != nil {
		return nil, fmt.Errorf("extract lineage: %w", err)
	}
	if len(result) == 0 {
		return nil, ErrLineageNotFound
	}

	var rows []Row
	for _, fqName := range sortedKeys(result) {
		details := result[fqName]

		schemaName := details.Schema
		if schemaName == "" {
			schemaName = meta.Schema
		}
		tableName := details.Table
		if tableName == "" {
			tableName = meta.Table
		}

		if len(details.Columns) == 0 {
			// Degenerate row: the statement touches the table but the
			// extractor reported no columns for it.
			rows = append(rows, Row{
				Filename:     meta.Filename,
				DatabaseName: meta.Database,
				ClusterName:  meta.Cluster,
				SchemaName:   schemaName,
				TableName:    tableName,
			})
			continue
		}

		for _, columnName := range sortedKeys(details.Columns) {
			column := details.Columns[columnName]

			dataType := column.DataType
			if dataType == "" {
				dataType = DefaultDataType
			}

			for _, item := range column.Lineage {
				rows = append(rows, Row{
					Filename:           meta.Filename,
					DatabaseName:       meta.Database,
					ClusterName:        meta.Cluster,
					SchemaName:         schemaName,
					TableName:          tableName,
					ColumnName:         columnName,
					ColumnDataType:     dataType,
					Expression:         item.Expression,
					Message:            item.Message,
					SourceDatabaseName: meta.SourceDatabase,
					SourceClusterName:  meta.SourceCluster,
					SourceSchemaName:   item.Schema,
					SourceTableName:    item.Table,
					SourceColumnName:   item.Column,
					FilterType:         item.FilterType,
					Filter:             item.Filter,
				})
			}
		}
	}

	return rows, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

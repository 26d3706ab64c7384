// Package lineage defines the wire types returned by a lineage
// extraction collaborator and flattens them into the flat row schema
// written by sql2lineage.
//
// The package does not parse SQL. All dialect handling and
// column-to-column resolution happens behind the Extractor interface;
// implementations live in internal/extractor.
//
// # Basic Usage
//
//	rows, err := lineage.Convert(ctx, ex, "SELECT id FROM t", "", lineage.Metadata{
//	    Database: "hive",
//	    Cluster:  "gold",
//	    Table:    "t",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s.%s <- %s.%s\n", row.TableName, row.ColumnName,
//	        row.SourceTableName, row.SourceColumnName)
//	}
package lineage

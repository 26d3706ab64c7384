package lineage

// DefaultDataType is the sentinel used when the extractor reports no
// data type for a column.
const DefaultDataType = "NA"

// Columns is the output header, in serialization order.
var Columns = []string{
	"filename",
	"database_name",
	"cluster_name",
	"schema_name",
	"table_name",
	"column_name",
	"column_data_type",
	"expression",
	"message",
	"source_database_name",
	"source_cluster_name",
	"source_schema_name",
	"source_table_name",
	"source_column_name",
	"filter_type",
	"filter",
}

// Row is one flat lineage record: a single (table, column, source) triple
// plus the static metadata attached to the whole statement. Rows are
// constructed once and never mutated.
type Row struct {
	Filename           string `json:"filename"`
	DatabaseName       string `json:"database_name"`
	ClusterName        string `json:"cluster_name"`
	SchemaName         string `json:"schema_name"`
	TableName          string `json:"table_name"`
	ColumnName         string `json:"column_name"`
	ColumnDataType     string `json:"column_data_type"`
	Expression         string `json:"expression"`
	Message            string `json:"message"`
	SourceDatabaseName string `json:"source_database_name"`
	SourceClusterName  string `json:"source_cluster_name"`
	SourceSchemaName   string `json:"source_schema_name"`
	SourceTableName    string `json:"source_table_name"`
	SourceColumnName   string `json:"source_column_name"`
	FilterType         string `json:"filter_type"`
	Filter             string `json:"filter"`
}

// Values returns the row fields in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Filename,
		r.DatabaseName,
		r.ClusterName,
		r.SchemaName,
		r.TableName,
		r.ColumnName,
		r.ColumnDataType,
		r.Expression,
		r.Message,
		r.SourceDatabaseName,
		r.SourceClusterName,
		r.SourceSchemaName,
		r.SourceTableName,
		r.SourceColumnName,
		r.FilterType,
		r.Filter,
	}
}

// Metadata carries the caller-supplied labels attached to every row
// derived from one statement.
type Metadata struct {
	Filename       string
	Database       string
	Cluster        string
	Schema         string
	Table          string
	SourceDatabase string
	SourceCluster  string
}

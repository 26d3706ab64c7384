// Package pipeline orchestrates a conversion run: resolve the input into
// statements, flatten each statement's lineage, and write the combined
// table once at the end.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sql2lineage/internal/input"
	"github.com/leapstack-labs/sql2lineage/internal/lineage"
	"github.com/leapstack-labs/sql2lineage/internal/output"
)

// Request describes one conversion run.
type Request struct {
	Input          string
	Output         string
	Format         string
	Dialect        string
	Database       string
	Cluster        string
	Schema         string
	Table          string
	SourceDatabase string
	SourceCluster  string
}

// Runner executes conversion runs. Statements are processed strictly in
// order, one at a time; the first failure aborts the run and no output
// file is written.
type Runner struct {
	Extractor lineage.Extractor
	Logger    *slog.Logger
}

// Run performs the conversion described by req.
func (r *Runner) Run(ctx context.Context, req Request) error {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	stmts, err := input.Resolve(req.Input, req.Table)
	if err != nil {
		return err
	}
	log.Debug("resolved input", "statements", len(stmts))

	var rows []lineage.Row
	for _, stmt := range stmts {
		log.Info("parsing sql", "filename", stmt.Filename, "table", stmt.Table)

		meta := lineage.Metadata{
			Filename:       stmt.Filename,
			Database:       req.Database,
			Cluster:        req.Cluster,
			Schema:         req.Schema,
			Table:          stmt.Table,
			SourceDatabase: req.SourceDatabase,
			SourceCluster:  req.SourceCluster,
		}

		converted, err := lineage.Convert(ctx, r.Extractor, stmt.SQL, req.Dialect, meta)
		if err != nil {
			log.Error("sql parsing failed", "filename", stmt.Filename, "error", err)
			if stmt.Filename != "" {
				return fmt.Errorf("%s: %w", stmt.Filename, err)
			}
			return err
		}

		log.Debug("completed sql parsing", "filename", stmt.Filename, "rows", len(converted))
		rows = append(rows, converted...)
	}

	if err := output.WriteFile(req.Output, req.Format, rows); err != nil {
		return err
	}
	log.Info("wrote lineage table", "path", req.Output, "rows", len(rows))
	return nil
}

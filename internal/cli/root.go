// Package cli provides the command-line interface for sql2lineage.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sql2lineage/internal/cli/config"
	"github.com/leapstack-labs/sql2lineage/internal/extractor"
	"github.com/leapstack-labs/sql2lineage/internal/input"
	"github.com/leapstack-labs/sql2lineage/internal/output"
	"github.com/leapstack-labs/sql2lineage/internal/pipeline"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sql2lineage",
		Short: "Generate a column lineage table from SQL",
		Long: `sql2lineage converts SQL statements into a flat column-lineage table.

The input can be a literal SQL statement, a single .sql file, or a
directory tree of .sql files. Lineage is resolved by a pluggable
extractor (the embedded LeapSQL lineage library, a remote extraction
service, or an external command) and written as CSV, JSON, or a
rendered table.`,
		Example: `  # Single statement (the destination table must be named)
  sql2lineage -i "SELECT id, name FROM users" -t active_users -o lineage.csv

  # A file; the destination table is the file's base name
  sql2lineage -i models/active_users.sql -d hive -c gold -o lineage.csv

  # Every .sql file under a directory
  sql2lineage -i models/ -d hive -c gold --source-database oracle -o lineage.csv

  # Ask a remote extraction service, keep the dialect explicit
  sql2lineage -i models/ --dialect postgres -o lineage.csv \
    --config extractor-remote.yaml`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), &slog.HandlerOptions{
				Level: level,
			})).With("run_id", uuid.NewString())

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Column lineage exporter for the LeapSQL toolchain
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sql2lineage.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.Flags().StringP("input", "i", "", "Input file path, directory path, or literal SQL statement")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (overwritten if present)")
	rootCmd.Flags().StringP("database", "d", "", `Destination database type label (e.g. "hive", "oracle")`)
	rootCmd.Flags().StringP("cluster", "c", "", "Destination cluster label")
	rootCmd.Flags().StringP("schema", "s", "", "Destination schema label")
	rootCmd.Flags().StringP("table", "t", "", "Destination table name; required when --input is a SQL statement, ignored for files and directories")
	rootCmd.Flags().String("source-database", "", "Source database type label")
	rootCmd.Flags().String("source-cluster", "", "Source cluster label")
	rootCmd.Flags().String("dialect", "", "SQL dialect hint forwarded to the extractor (empty = auto-detect)")
	rootCmd.Flags().String("format", "", "Output format (csv|json|table)")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	// Register completion for format flag
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command. Failures are logged with their cause,
// and a completion message is always logged, success or not.
func Execute() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := NewRootCmd().Execute()
	if err != nil {
		logger.Error("failed to generate lineage", "error", err)
	}
	logger.Info("done")
	return err
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{Format: config.DefaultFormat}
}

func runConvert(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	log := config.GetLogger(ctx)

	flags := cmd.Flags()
	inputArg, _ := flags.GetString("input")
	outputArg, _ := flags.GetString("output")
	tableArg, _ := flags.GetString("table")

	kind := input.Classify(inputArg)
	if kind == input.KindStatement && tableArg == "" {
		return fmt.Errorf("--table is required when --input is a SQL statement")
	}
	if kind != input.KindStatement && tableArg != "" {
		log.Warn("--table is ignored when --input is a file or directory", "table", tableArg)
	}

	ex, err := extractor.New(cfg.Extractor)
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{Extractor: ex, Logger: log}
	return runner.Run(ctx, pipeline.Request{
		Input:          inputArg,
		Output:         outputArg,
		Format:         cfg.Format,
		Dialect:        cfg.Dialect,
		Database:       cfg.Database,
		Cluster:        cfg.Cluster,
		Schema:         cfg.Schema,
		Table:          tableArg,
		SourceDatabase: cfg.SourceDatabase,
		SourceCluster:  cfg.SourceCluster,
	})
}

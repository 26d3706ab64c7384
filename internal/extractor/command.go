package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

// Command shells out to an external lineage extraction executable. The
// statement is written to stdin, the dialect is passed as a --dialect
// flag when set, and the nested result is decoded from stdout.
type Command struct {
	path string
	args []string
}

// NewCommand returns an extractor that runs path with the given base
// arguments on every call.
func NewCommand(path string, args ...string) *Command {
	return &Command{path: path, args: args}
}

// ExtractStatementsLineage implements lineage.Extractor.
func (c *Command) ExtractStatementsLineage(ctx context.Context, sqlStmt, dialect string) (lineage.Result, error) {
	args := append([]string{}, c.args...)
	if dialect != "" {
		args = append(args, "--dialect", dialect)
	}

	cmd := exec.CommandContext(ctx, c.path, args...)
	cmd.Stdin = strings.NewReader(sqlStmt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", c.path, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", c.path, err)
	}

	var result lineage.Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("decode %s output: %w", c.path, err)
	}
	return result, nil
}

// Package input classifies the --input argument and expands it into the
// ordered list of SQL statements to process.
package input

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies an input argument.
type Kind int

const (
	// KindStatement means the argument is a literal SQL statement.
	KindStatement Kind = iota
	// KindFile means the argument is a path to a single SQL file.
	KindFile
	// KindDir means the argument is a directory scanned for *.sql files.
	KindDir
)

// Statement is one unit of work for the pipeline.
type Statement struct {
	// Filename is the source file path, empty for literal statements.
	Filename string
	// Table is the default destination table name: the file's base name
	// with the extension stripped, or the caller-supplied name for
	// literal statements.
	Table string
	// SQL is the full statement text.
	SQL string
}

// Classify reports whether the argument names a file, a directory, or
// neither (a literal statement).
func Classify(arg string) Kind {
	info, err := os.Stat(arg)
	if err != nil {
		return KindStatement
	}
	if info.IsDir() {
		return KindDir
	}
	return KindFile
}

// Resolve expands the input argument into statements. Directories are
// walked recursively in lexical order and only files ending in .sql are
// picked up. The table argument is used only for literal statements.
func Resolve(arg, table string) ([]Statement, error) {
	switch Classify(arg) {
	case KindFile:
		stmt, err := readStatement(arg)
		if err != nil {
			return nil, err
		}
		return []Statement{stmt}, nil

	case KindDir:
		var stmts []Statement
		err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".sql" {
				return nil
			}
			stmt, err := readStatement(path)
			if err != nil {
				return err
			}
			stmts = append(stmts, stmt)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", arg, err)
		}
		return stmts, nil

	default:
		return []Statement{{Table: table, SQL: arg}}, nil
	}
}

func readStatement(path string) (Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Statement{}, fmt.Errorf("read %s: %w", path, err)
	}
	base := filepath.Base(path)
	return Statement{
		Filename: path,
		Table:    strings.TrimSuffix(base, filepath.Ext(base)),
		SQL:      string(data),
	}, nil
}

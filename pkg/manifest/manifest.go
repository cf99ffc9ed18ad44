// Package manifest writes CSV manifests describing a directory's files,
// one header row plus one data row per file.
package manifest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/types"
)

// Column names with defined value sources. Any other declared column is
// written as an empty string.
const (
	// ColumnFilename receives each file's name.
	ColumnFilename = "filename"
	// ColumnLabel receives the configured constant label or, when a
	// Labeler is set, a per-file label.
	ColumnLabel = "label"
)

var (
	// ErrNoColumns is returned when the column list is empty.
	ErrNoColumns = errors.New("manifest columns cannot be empty")
	// ErrLabelRequired is returned when a label column is declared but
	// neither a constant label nor a labeler is configured.
	ErrLabelRequired = errors.New("label column declared but no label value or labeler configured")
)

// Labeler produces a label for one file. Implementations may inspect the
// file contents, e.g. by querying a vision model.
type Labeler interface {
	Label(ctx context.Context, path string) (string, error)
}

// Config controls manifest generation.
type Config struct {
	// Columns lists the CSV header in order.
	Columns []string
	// Label is the constant value written to the label column.
	Label string
	// Labeler, when set, supplies per-file labels instead of Label.
	Labeler Labeler
}

// Generator runs manifest generation.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// New creates a Generator. Configuration errors are reported here, before
// any file is written.
func New(logger *slog.Logger, cfg Config) (*Generator, error) {
	if len(cfg.Columns) == 0 {
		return nil, ErrNoColumns
	}
	if hasColumn(cfg.Columns, ColumnLabel) && cfg.Label == "" && cfg.Labeler == nil {
		return nil, ErrLabelRequired
	}
	return &Generator{cfg: cfg, log: logger}, nil
}

// Run writes the manifest for sourceDir to csvPath, overwriting any
// existing file there. An empty source directory yields a header-only CSV.
// A per-file labeling failure drops that file's row, is logged and counted;
// the batch continues.
func (g *Generator) Run(ctx context.Context, csvPath, sourceDir string) (*types.Summary, error) {
	names, err := enumerate.List(sourceDir, "")
	if err != nil {
		return nil, err
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer f.Close()

	g.log.Info("generating manifest",
		"manifest", csvPath, "source", sourceDir,
		"columns", g.cfg.Columns, "files", len(names))

	w := csv.NewWriter(f)
	if err := w.Write(g.cfg.Columns); err != nil {
		return nil, fmt.Errorf("failed to write manifest header: %w", err)
	}

	summary := &types.Summary{}
	for _, name := range names {
		row, err := g.row(ctx, sourceDir, name)
		if err != nil {
			g.log.Warn("failed to build manifest row", "file", name, "error", err)
			summary.Add(types.ItemResult{Name: name, Status: types.StatusFailed, Err: err})
			continue
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write manifest row: %w", err)
		}
		summary.Add(types.ItemResult{Name: name, Status: types.StatusOK})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close manifest: %w", err)
	}

	g.log.Info("completed generating manifest",
		"succeeded", summary.Succeeded(),
		"failed", summary.Failed())
	return summary, nil
}

func (g *Generator) row(ctx context.Context, sourceDir, name string) ([]string, error) {
	row := make([]string, len(g.cfg.Columns))
	for i, column := range g.cfg.Columns {
		switch column {
		case ColumnFilename:
			row[i] = name
		case ColumnLabel:
			if g.cfg.Labeler == nil {
				row[i] = g.cfg.Label
				continue
			}
			label, err := g.cfg.Labeler.Label(ctx, filepath.Join(sourceDir, name))
			if err != nil {
				return nil, fmt.Errorf("labeling failed: %w", err)
			}
			row[i] = label
		}
		// Columns without a value source stay empty.
	}
	return row, nil
}

func hasColumn(columns []string, name string) bool {
	for _, column := range columns {
		if column == name {
			return true
		}
	}
	return false
}

// Package dataprep provides batch data-preparation operations for machine
// learning pipelines.
//
// Three independent, stateless operations share one pattern — enumerate a
// source directory, transform each file, write output, record the outcome:
//
//  1. Resize: scale every image in a directory to an exact size.
//  2. Move: relocate files between directories by extension.
//  3. Manifest: write a CSV listing a directory's files, optionally with a
//     label column.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//		"log/slog"
//
//		"github.com/menta2k/dataprep"
//		"github.com/menta2k/dataprep/pkg/types"
//	)
//
//	func main() {
//		prep := dataprep.New(slog.Default())
//
//		// Resize raw images into a training directory
//		summary, err := prep.ResizeImages("raw", "train", types.Dimension{Width: 256, Height: 256}, "")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("resized %d images (%d failed)", summary.Succeeded(), summary.Failed())
//
//		// Stage the leftovers elsewhere
//		if _, err := prep.MoveFiles("raw", "rejects", ".txt"); err != nil {
//			log.Fatal(err)
//		}
//
//		// Write the training manifest
//		_, err = prep.GenerateCSV(context.Background(), "train.csv", "train",
//			[]string{"filename", "label"}, "cat")
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Operations compose only through the filesystem: one operation's
// destination directory becomes another's source. Per-file failures
// (corrupt image, unmovable file) are logged and counted in the returned
// summary without aborting the batch; configuration and setup errors are
// returned before anything is written.
package dataprep

import (
	"context"
	"log/slog"

	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/manifest"
	"github.com/menta2k/dataprep/pkg/mover"
	"github.com/menta2k/dataprep/pkg/resize"
	"github.com/menta2k/dataprep/pkg/types"
)

// Version of the dataprep library
const Version = "1.0.0"

// DataPrep provides a high-level interface for the batch operations.
type DataPrep struct {
	log       *slog.Logger
	resizeCfg resize.Config
	moveCfg   mover.Config
}

// New creates a DataPrep with default configuration. A nil logger falls
// back to slog.Default.
func New(logger *slog.Logger) *DataPrep {
	return NewWithConfig(logger, resize.DefaultConfig(), mover.Config{})
}

// NewWithConfig creates a DataPrep with custom operation defaults. The
// resize config's Size field is ignored; sizes are given per call.
func NewWithConfig(logger *slog.Logger, resizeCfg resize.Config, moveCfg mover.Config) *DataPrep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataPrep{
		log:       logger,
		resizeCfg: resizeCfg,
		moveCfg:   moveCfg,
	}
}

// ResizeImages resizes every matching image in sourceDir to exactly size,
// writing results into destDir under the same filenames. An empty filter
// processes every file with a known image extension.
func (d *DataPrep) ResizeImages(sourceDir, destDir string, size types.Dimension, filter enumerate.Filter) (*types.Summary, error) {
	cfg := d.resizeCfg
	cfg.Size = size
	cfg.Filter = filter

	r, err := resize.New(d.log, cfg)
	if err != nil {
		return nil, err
	}
	return r.Run(sourceDir, destDir)
}

// MoveFiles relocates every matching file in sourceDir into destDir. An
// empty filter moves every file.
func (d *DataPrep) MoveFiles(sourceDir, destDir string, filter enumerate.Filter) (*types.Summary, error) {
	cfg := d.moveCfg
	cfg.Filter = filter

	m, err := mover.New(d.log, cfg)
	if err != nil {
		return nil, err
	}
	return m.Run(sourceDir, destDir)
}

// GenerateCSV writes a manifest for sourceDir to csvPath with the given
// columns. A non-empty label fills the label column on every row.
func (d *DataPrep) GenerateCSV(ctx context.Context, csvPath, sourceDir string, columns []string, label string) (*types.Summary, error) {
	g, err := manifest.New(d.log, manifest.Config{Columns: columns, Label: label})
	if err != nil {
		return nil, err
	}
	return g.Run(ctx, csvPath, sourceDir)
}

// GenerateLabeledCSV writes a manifest whose label column is filled per
// file by the given labeler.
func (d *DataPrep) GenerateLabeledCSV(ctx context.Context, csvPath, sourceDir string, columns []string, labeler manifest.Labeler) (*types.Summary, error) {
	g, err := manifest.New(d.log, manifest.Config{Columns: columns, Labeler: labeler})
	if err != nil {
		return nil, err
	}
	return g.Run(ctx, csvPath, sourceDir)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}

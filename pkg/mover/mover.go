// Package mover implements the batch file move operation: matching files
// are relocated from a source directory into a destination directory,
// keeping their names.
package mover

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/menta2k/dataprep/internal/utils"
	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/types"
)

// CollisionPolicy decides what happens when the destination already holds a
// file with the same name.
type CollisionPolicy string

const (
	// Skip leaves both files untouched and records the item as skipped.
	Skip CollisionPolicy = "skip"
	// Overwrite replaces the destination file.
	Overwrite CollisionPolicy = "overwrite"
)

// Config controls a batch move run.
type Config struct {
	// Filter restricts the batch to one extension; empty moves every file.
	Filter enumerate.Filter
	// OnCollision picks the behavior for name collisions. Defaults to Skip.
	OnCollision CollisionPolicy
}

// Mover runs batch move operations.
type Mover struct {
	cfg Config
	log *slog.Logger
}

// New creates a Mover, validating the configuration.
func New(logger *slog.Logger, cfg Config) (*Mover, error) {
	switch cfg.OnCollision {
	case "":
		cfg.OnCollision = Skip
	case Skip, Overwrite:
	default:
		return nil, fmt.Errorf("unknown collision policy: %s", cfg.OnCollision)
	}
	return &Mover{cfg: cfg, log: logger}, nil
}

// Run relocates every matching file in sourceDir into destDir. Per-file
// failures are logged and skipped; the batch continues. After a successful
// move the file no longer exists at the source path.
func (m *Mover) Run(sourceDir, destDir string) (*types.Summary, error) {
	names, err := enumerate.List(sourceDir, m.cfg.Filter)
	if err != nil {
		return nil, err
	}
	if err := utils.EnsureDir(destDir); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	m.log.Info("moving files",
		"source", sourceDir, "dest", destDir,
		"filter", string(m.cfg.Filter), "files", len(names))

	summary := &types.Summary{}
	for _, name := range names {
		srcPath := filepath.Join(sourceDir, name)
		destPath := filepath.Join(destDir, name)

		if utils.FileExists(destPath) {
			if m.cfg.OnCollision == Skip {
				m.log.Warn("destination file exists, skipping", "file", name)
				summary.Add(types.ItemResult{Name: name, Status: types.StatusSkipped})
				continue
			}
			m.log.Info("destination file exists, overwriting", "file", name)
		}

		if err := moveFile(srcPath, destPath); err != nil {
			m.log.Warn("failed to move file", "file", name, "error", err)
			summary.Add(types.ItemResult{Name: name, Status: types.StatusFailed, Err: err})
			continue
		}
		m.log.Debug("moved file", "file", name)
		summary.Add(types.ItemResult{Name: name, Status: types.StatusOK})
	}

	m.log.Info("completed moving files",
		"succeeded", summary.Succeeded(),
		"failed", summary.Failed(),
		"skipped", summary.Skipped())
	return summary, nil
}

// moveFile renames src to dst, falling back to copy+remove when rename
// fails (typically a cross-device move).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(destFile, srcFile); err != nil {
		destFile.Close()
		return fmt.Errorf("failed to copy contents: %w", err)
	}
	return destFile.Close()
}

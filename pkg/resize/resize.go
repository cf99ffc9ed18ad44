// Package resize implements the batch image resize operation: every
// matching image in a source directory is decoded, resized to an exact
// target size and re-encoded into a destination directory under the same
// filename, overwriting any previous output.
package resize

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/menta2k/dataprep/internal/utils"
	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/imageio"
	"github.com/menta2k/dataprep/pkg/types"
)

var (
	// ErrInvalidSize is returned when the output size has a non-positive side.
	ErrInvalidSize = errors.New("output size must have positive width and height")
	// ErrInvalidQuality is returned when the encoding quality is out of range.
	ErrInvalidQuality = errors.New("quality must be between 1 and 100")
)

// Config controls a batch resize run.
type Config struct {
	// Size is the exact output dimension. Aspect ratio is not preserved.
	Size types.Dimension
	// Filter restricts the batch to one extension. When empty, every file
	// with a known image extension is processed and the rest are skipped.
	Filter enumerate.Filter
	// Format re-encodes outputs as jpg, png or webp. Empty keeps each
	// file's source extension.
	Format string
	// Quality is the JPEG/WebP encoding quality (1-100).
	Quality int
	// Lossless enables lossless WebP output.
	Lossless bool
	// Resample names the resampling kernel: lanczos, linear, box or
	// nearest. Empty means lanczos.
	Resample string
}

// DefaultConfig returns the configuration used when none is given:
// quality 90, Lanczos resampling, source extension kept.
func DefaultConfig() Config {
	return Config{
		Quality:  90,
		Resample: "lanczos",
	}
}

// ParseResample maps a kernel name to its imaging filter.
func ParseResample(name string) (imaging.ResampleFilter, error) {
	switch name {
	case "", "lanczos":
		return imaging.Lanczos, nil
	case "linear":
		return imaging.Linear, nil
	case "box":
		return imaging.Box, nil
	case "nearest":
		return imaging.NearestNeighbor, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample kernel: %s", name)
	}
}

// Resizer runs batch resize operations.
type Resizer struct {
	cfg    Config
	kernel imaging.ResampleFilter
	log    *slog.Logger
}

// New creates a Resizer, validating the configuration before any
// filesystem access.
func New(logger *slog.Logger, cfg Config) (*Resizer, error) {
	if !cfg.Size.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, cfg.Size)
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuality, cfg.Quality)
	}
	switch cfg.Format {
	case "", "jpg", "jpeg", "png", "webp":
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
	kernel, err := ParseResample(cfg.Resample)
	if err != nil {
		return nil, err
	}
	return &Resizer{cfg: cfg, kernel: kernel, log: logger}, nil
}

// Run resizes every matching file in sourceDir into destDir. Per-file
// decode or encode failures are logged and skipped; the batch continues.
// The returned summary lists every enumerated file with its outcome.
func (r *Resizer) Run(sourceDir, destDir string) (*types.Summary, error) {
	names, err := enumerate.List(sourceDir, r.cfg.Filter)
	if err != nil {
		return nil, err
	}
	if err := utils.EnsureDir(destDir); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	r.log.Info("resizing images",
		"source", sourceDir, "dest", destDir,
		"size", r.cfg.Size.String(), "files", len(names))

	summary := &types.Summary{}
	for _, name := range names {
		if r.cfg.Filter == "" && !utils.IsImageFile(name) {
			summary.Add(types.ItemResult{Name: name, Status: types.StatusSkipped})
			continue
		}
		if err := r.resizeOne(sourceDir, destDir, name); err != nil {
			r.log.Warn("failed to process image", "file", name, "error", err)
			summary.Add(types.ItemResult{Name: name, Status: types.StatusFailed, Err: err})
			continue
		}
		r.log.Debug("resized image", "file", name)
		summary.Add(types.ItemResult{Name: name, Status: types.StatusOK})
	}

	r.log.Info("completed resizing images",
		"succeeded", summary.Succeeded(),
		"failed", summary.Failed(),
		"skipped", summary.Skipped())
	return summary, nil
}

func (r *Resizer) resizeOne(sourceDir, destDir, name string) error {
	img, err := imageio.Load(filepath.Join(sourceDir, name))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Resize(img, r.cfg.Size.Width, r.cfg.Size.Height, r.kernel)

	outName := name
	if r.cfg.Format != "" {
		outName = utils.ReplaceExtension(name, r.cfg.Format)
	}

	opts := imageio.Options{Quality: r.cfg.Quality, Lossless: r.cfg.Lossless}
	if err := imageio.Save(resized, filepath.Join(destDir, outName), opts); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

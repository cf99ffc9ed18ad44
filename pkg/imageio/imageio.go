// Package imageio loads and saves images across the formats the pipeline
// understands: jpg, png, gif, bmp, tiff and webp.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/dataprep/internal/utils"
)

// Options controls lossy encoding.
type Options struct {
	// Quality is the JPEG/WebP quality (1-100).
	Quality int
	// Lossless enables lossless WebP output.
	Lossless bool
}

// Load loads an image from a file path with WebP support.
func Load(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Save writes an image to path, picking the encoder from the file extension.
func Save(img image.Image, path string, opts Options) error {
	switch utils.GetFileExtension(path) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)})
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(opts.Quality))
	case "png", "gif", "bmp", "tif", "tiff":
		return imaging.Save(img, path)
	default:
		return fmt.Errorf("unsupported output format: %s", utils.GetFileExtension(path))
	}
}

// EncodeJPEG re-encodes an image as JPEG bytes for sending to a vision
// model. When maxDim > 0 the long side is downscaled to at most maxDim.
func EncodeJPEG(img image.Image, maxDim, quality int) ([]byte, error) {
	if maxDim > 0 {
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		if w > maxDim || h > maxDim {
			if w >= h {
				img = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
			} else {
				img = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
			}
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

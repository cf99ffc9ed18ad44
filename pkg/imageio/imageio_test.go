package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > width/3 && x < 2*width/3 && y > height/3 && y < 2*height/3 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{64, 64, 64, 255})
			}
		}
	}
	return img
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(120, 80)

	for _, name := range []string{"out.jpg", "out.png", "out.webp"} {
		path := filepath.Join(dir, name)
		if err := Save(img, path, Options{Quality: 90}); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}

		bounds := loaded.Bounds()
		if bounds.Dx() != 120 || bounds.Dy() != 80 {
			t.Errorf("%s: got %dx%d, want 120x80", name, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	img := createTestImage(10, 10)
	err := Save(img, filepath.Join(t.TempDir(), "out.xyz"), Options{Quality: 90})
	if err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for non-image file")
	}
}

func TestEncodeJPEGDownscalesLongSide(t *testing.T) {
	img := createTestImage(400, 200)

	data, err := EncodeJPEG(img, 100, 85)
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 100 {
		t.Errorf("Expected long side 100, got %d", bounds.Dx())
	}
	if bounds.Dy() != 50 {
		t.Errorf("Expected short side 50, got %d", bounds.Dy())
	}
}

func TestEncodeJPEGKeepsSmallImages(t *testing.T) {
	img := createTestImage(60, 40)

	data, err := EncodeJPEG(img, 100, 85)
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 40 {
		t.Errorf("Expected 60x40 unchanged, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows is a 1x2 image: bottom row red, top row blue, as GL returns it.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 0, 255, 255,
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA() error = %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	if _, err := FlipRGBA(twoRows, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FlipRGBA(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "galaxy")
	sc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 8e6, time.UTC) }

	path, err := sc.CaptureFromPixels(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if want := filepath.Join(dir, "galaxy_2026-03-04_05-06-07.008.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 1x2", b)
	}
}

func TestGenerateFilenameNoDir(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	name := sc.GenerateFilename()
	if !strings.HasPrefix(name, "shot_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("GenerateFilename() = %s", name)
	}
	if strings.ContainsRune(name, filepath.Separator) {
		t.Errorf("GenerateFilename() = %s, want bare file name", name)
	}
}

func TestCaptureBMP(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "galaxy")
	sc.SetFormat("BMP")

	path, err := sc.CaptureFromPixels(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if filepath.Ext(path) != ".bmp" {
		t.Fatalf("path = %s, want .bmp", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("top pixel = %v, want blue", img.At(0, 0))
	}
}

func TestSetFormatFallback(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	sc.SetFormat("tiff")
	if !strings.HasSuffix(sc.GenerateFilename(), ".png") {
		t.Errorf("GenerateFilename() = %s, want png fallback", sc.GenerateFilename())
	}
}

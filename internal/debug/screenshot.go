// Package debug provides screenshot capture for the viewers.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Supported screenshot formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// ScreenshotCapture writes frames to timestamped image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    FormatPNG,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// SetFormat selects the file format by name. Unknown names fall back to PNG.
func (sc *ScreenshotCapture) SetFormat(format string) {
	if strings.EqualFold(format, FormatBMP) {
		sc.format = FormatBMP
		return
	}
	sc.format = FormatPNG
}

// GenerateFilename returns the path the next capture would be written to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// CaptureFromPixels saves bottom-up RGBA pixels, as read back from OpenGL,
// to a new timestamped file and returns its path.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	filename := sc.GenerateFilename()
	if err := WriteImage(filename, pixels, width, height); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteImage saves bottom-up RGBA pixels to path, creating parent directories.
// A .bmp extension writes BMP; anything else writes PNG.
func WriteImage(path string, pixels []byte, width, height int) error {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	encode, name := png.Encode, "PNG"
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		encode, name = bmp.Encode, "BMP"
	}
	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return file.Close()
}

// FlipRGBA copies bottom-up RGBA rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

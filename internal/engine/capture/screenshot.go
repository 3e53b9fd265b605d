// Package capture saves framebuffer contents as screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshot handles screenshot capture into a target directory.
type Screenshot struct {
	outputDir string
	prefix    string
}

// NewScreenshot creates a screenshot handler writing prefixed PNG files.
func NewScreenshot(outputDir, prefix string) *Screenshot {
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// CaptureWindow reads the currently bound read framebuffer and saves it.
// Must be called after the frame is fully presented.
func (sc *Screenshot) CaptureWindow(width, height int) (string, error) {
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return sc.CaptureFromPixels(pixels, width, height)
}

// CaptureFromPixels saves raw RGBA pixel data as a PNG. The image is flipped
// vertically since OpenGL has its origin at the bottom-left.
func (sc *Screenshot) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.generateFilename()

	// Create image (flip vertically during copy)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // Flip Y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride

		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

func (sc *Screenshot) generateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

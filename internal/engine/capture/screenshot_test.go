package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshot(dir, "frame")

	// 2x2 image: bottom row red, top row blue in GL order
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
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

	// GL bottom row (red) must end up at the image bottom
	r, _, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0 || b>>8 != 255 {
		t.Errorf("top-left must be blue, got r=%d b=%d", r>>8, b>>8)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("bottom-left must be red, got r=%d b=%d", r>>8, b>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshot(t.TempDir(), "frame")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestFilenameFormat(t *testing.T) {
	sc := NewScreenshot("/tmp/shots", "frame")
	name := sc.generateFilename()

	if filepath.Dir(name) != "/tmp/shots" {
		t.Errorf("unexpected directory: %s", name)
	}
	base := filepath.Base(name)
	if !strings.HasPrefix(base, "frame_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("unexpected filename: %s", base)
	}
}

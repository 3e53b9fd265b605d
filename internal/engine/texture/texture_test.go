package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestNextPow2(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{255, 256},
		{256, 256},
		{257, 512},
		{1024, 1024},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.in); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFlipToRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	// Distinct color per row
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y * 10), A: 255})
		}
	}

	flipped := flipToRGBA(img)

	for y := 0; y < 3; y++ {
		r, _, _, _ := flipped.At(0, y).RGBA()
		want := uint32((2 - y) * 10)
		if uint32(r>>8) != want {
			t.Errorf("row %d: got red %d, want %d", y, r>>8, want)
		}
	}
}

// Package texture creates procedural textures, loads material images and
// owns the sampler objects.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// Anisotropic filtering constants, EXT on GL 4.1 core.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
)

// CreateSingleColor returns a 1x1 texture of the given color.
func CreateSingleColor(r, g, b uint8) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	data := []uint8{r, g, b}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, 1, 1, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(data))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// CreateCheckerBoard returns a black and white checkerboard texture of
// size x size pixels with checkerSize pixel cells, stored as sRGB with mips.
func CreateCheckerBoard(size, checkerSize int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	const stride = 3
	data := make([]uint8, stride*size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c uint8
			if (x/checkerSize+y/checkerSize)&1 == 0 {
				c = 255
			}
			i := y*stride*size + x*stride
			data[i] = c
			data[i+1] = c
			data[i+2] = c
		}
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8, int32(size), int32(size), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Load reads an image from disk, flips it to the bottom-up orientation GL
// expects, pads it to power-of-two dimensions when needed and uploads it with
// a full mip chain. Color textures should pass srgb true; data textures
// (normals, roughness) false.
func Load(path string, srgb bool) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode texture %s: %w", path, err)
	}

	rgba := flipToRGBA(img)

	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if pw, ph := nextPow2(w), nextPow2(h); pw != w || ph != h {
		scaled := image.NewRGBA(image.Rect(0, 0, pw, ph))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), rgba, bounds, xdraw.Src, nil)
		rgba = scaled
		w, h = pw, ph
	}

	internal := int32(gl.RGBA8)
	if srgb {
		internal = gl.SRGB8_ALPHA8
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

// flipToRGBA converts any decoded image into an RGBA image flipped along Y.
func flipToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	straight := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(straight, straight.Bounds(), img, bounds.Min, xdraw.Src)

	flipped := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := straight.Pix[y*straight.Stride : y*straight.Stride+w*4]
		dst := flipped.Pix[(h-1-y)*flipped.Stride:]
		copy(dst, src)
	}
	return flipped
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

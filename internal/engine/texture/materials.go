package texture

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/lumforge/shadowcast/internal/logger"
)

// Materials holds every texture the scene draws with: the terracotta tile
// material for the cubes and flat fallbacks for the background.
type Materials struct {
	White        uint32
	Grey         uint32
	Blue         uint32
	CheckerBoard uint32

	Diffuse   uint32
	Normal    uint32
	Specular  uint32
	Occlusion uint32
}

// LoadMaterials creates the procedural textures and loads the tile material
// from dir. A missing material image falls back to the matching flat texture
// so the renderer keeps working without assets on disk.
func LoadMaterials(dir string) *Materials {
	m := &Materials{
		White:        CreateSingleColor(255, 255, 255),
		Grey:         CreateSingleColor(127, 127, 127),
		Blue:         CreateSingleColor(127, 127, 255),
		CheckerBoard: CreateCheckerBoard(256, 16),
	}

	m.Diffuse = loadOrFallback(filepath.Join(dir, "Terracotta_Tiles_002_Base_Color.jpg"), true, m.CheckerBoard)
	m.Normal = loadOrFallback(filepath.Join(dir, "Terracotta_Tiles_002_Normal.jpg"), false, m.Blue)
	m.Specular = loadOrFallback(filepath.Join(dir, "Terracotta_Tiles_002_Roughness.jpg"), false, m.Grey)
	m.Occlusion = loadOrFallback(filepath.Join(dir, "Terracotta_Tiles_002_ambientOcclusion.jpg"), false, m.White)

	return m
}

func loadOrFallback(path string, srgb bool, fallback uint32) uint32 {
	tex, err := Load(path, srgb)
	if err != nil {
		logger.Warn("texture unavailable, using fallback", zap.String("path", path), zap.Error(err))
		return fallback
	}
	return tex
}

// Destroy releases all textures. Fallback aliases are deduplicated so each
// GL name is deleted once.
func (m *Materials) Destroy() {
	seen := map[uint32]bool{}
	for _, tex := range []uint32{
		m.White, m.Grey, m.Blue, m.CheckerBoard,
		m.Diffuse, m.Normal, m.Specular, m.Occlusion,
	} {
		if tex != 0 && !seen[tex] {
			seen[tex] = true
			gl.DeleteTextures(1, &tex)
		}
	}
	*m = Materials{}
}

package geometry

import (
	"testing"
)

func TestCubeIndices(t *testing.T) {
	ib := cubeIndices()
	if len(ib) != 36 {
		t.Fatalf("expected 36 cube indices, got %d", len(ib))
	}
	for i, idx := range ib {
		if idx >= 24 {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}

	// Every face must reference exactly its own 4 vertices
	for face := 0; face < 6; face++ {
		lo, hi := uint32(4*face), uint32(4*face+3)
		for i := face * 6; i < (face+1)*6; i++ {
			if ib[i] < lo || ib[i] > hi {
				t.Errorf("face %d index %d escapes its vertex range [%d,%d]", face, ib[i], lo, hi)
			}
		}
	}
}

func TestAdjacencyTopology(t *testing.T) {
	if len(adjacencyIndices) != 72 {
		t.Fatalf("expected 72 adjacency indices (12 triangles x 6), got %d", len(adjacencyIndices))
	}
	if len(adjacencyVertices) != 8*3 {
		t.Fatalf("expected 8 shared corner vertices, got %d floats", len(adjacencyVertices))
	}
	for i, idx := range adjacencyIndices {
		if idx >= 8 {
			t.Errorf("adjacency index %d out of range: %d", i, idx)
		}
	}

	// A triangle must not list one of its own corners as an adjacent vertex
	for tri := 0; tri < 12; tri++ {
		base := tri * 6
		corners := map[uint32]bool{
			adjacencyIndices[base]:   true,
			adjacencyIndices[base+2]: true,
			adjacencyIndices[base+4]: true,
		}
		if len(corners) != 3 {
			t.Errorf("triangle %d has duplicate corners", tri)
		}
		for _, adj := range []uint32{adjacencyIndices[base+1], adjacencyIndices[base+3], adjacencyIndices[base+5]} {
			if corners[adj] {
				t.Errorf("triangle %d lists corner %d as its own neighbour", tri, adj)
			}
		}
	}
}

func TestAdjacencyTrianglesMatchCubeFaces(t *testing.T) {
	// Each of the 12 adjacency triangles must lie in one axis-aligned face
	// plane of the unit cube.
	corner := func(idx uint32) [3]float32 {
		return [3]float32{
			adjacencyVertices[idx*3],
			adjacencyVertices[idx*3+1],
			adjacencyVertices[idx*3+2],
		}
	}

	for tri := 0; tri < 12; tri++ {
		base := tri * 6
		a := corner(adjacencyIndices[base])
		b := corner(adjacencyIndices[base+2])
		c := corner(adjacencyIndices[base+4])

		planar := false
		for axis := 0; axis < 3; axis++ {
			if a[axis] == b[axis] && b[axis] == c[axis] {
				planar = true
			}
		}
		if !planar {
			t.Errorf("triangle %d (%v %v %v) is not on a cube face", tri, a, b, c)
		}
	}
}

func TestQuadLayout(t *testing.T) {
	if len(quadVertices) != 4*11 {
		t.Fatalf("expected 4 vertices of 11 floats, got %d floats", len(quadVertices))
	}
	// All normals point up, all tangents along +X
	for v := 0; v < 4; v++ {
		n := quadVertices[v*11+3 : v*11+6]
		if n[0] != 0 || n[1] != 1 || n[2] != 0 {
			t.Errorf("vertex %d normal %v is not +Y", v, n)
		}
		tg := quadVertices[v*11+6 : v*11+9]
		if tg[0] != 1 || tg[1] != 0 || tg[2] != 0 {
			t.Errorf("vertex %d tangent %v is not +X", v, tg)
		}
	}
}

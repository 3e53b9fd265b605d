package geometry

// quadVertices holds a unit quad in the XZ plane facing up. Layout:
// position, normal, tangent, texcoord.
var quadVertices = []float32{
	-0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0,
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// cubeVertices holds a unit cube with 4 vertices per face so that normals and
// tangents stay flat. Face order: top, bottom, front, back, left, right.
var cubeVertices = []float32{
	// Top face
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0,

	// Bottom face
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, -1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, -1.0, 0.0, 0.0, 0.0, 1.0,

	// Front face
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 0.0, 1.0,

	// Back face
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0, 0.0, 1.0,

	// Left face
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0, -1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0, -1.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0, -1.0, 0.0, 1.0,

	// Right face
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 1.0,
}

// adjacencyVertices holds the 8 shared corners of a unit cube: top base then
// bottom base.
var adjacencyVertices = []float32{
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,

	0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
}

// adjacencyIndices lists each cube triangle with its three neighbouring
// vertices interleaved, the topology the silhouette extraction stage expects.
// Odd positions are the adjacent vertices.
var adjacencyIndices = []uint32{
	// Top face
	0, 5, 1, 4, 2, 3,
	2, 7, 3, 6, 0, 1,
	// Bottom face
	4, 1, 5, 0, 6, 7,
	6, 3, 7, 2, 4, 5,
	// Front face
	5, 6, 4, 2, 1, 0,
	1, 2, 0, 6, 5, 4,
	// Back face
	7, 4, 6, 0, 3, 2,
	3, 0, 2, 4, 7, 6,
	// Left face
	6, 4, 5, 1, 0, 3,
	0, 2, 3, 7, 6, 5,
	// Right face
	4, 6, 7, 3, 2, 1,
	2, 0, 1, 5, 4, 7,
}

// cubeIndices builds the 36 indices for the 24-vertex cube, two triangles per
// face.
func cubeIndices() []uint32 {
	ib := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := 4 * face
		ib = append(ib, base, base+1, base+2)
		ib = append(ib, base+2, base+3, base)
	}
	return ib
}

// CreateQuad returns a unit quad in the XZ plane with its normal along +Y.
func CreateQuad() *Mesh {
	return newMesh(quadVertices, quadIndices, 11)
}

// CreateCube returns a unit cube with per-face normals and tangents.
func CreateCube() *Mesh {
	return newMesh(cubeVertices, cubeIndices(), 11)
}

// CreateCubeWithAdjacency returns a position-only unit cube indexed as
// triangles with adjacency, for shadow volume extrusion.
func CreateCubeWithAdjacency() *Mesh {
	return newMesh(adjacencyVertices, adjacencyIndices, 3)
}

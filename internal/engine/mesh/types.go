// Package mesh builds the scene's primitive shapes and uploads them to the GPU.
package mesh

// Vertex is an interleaved vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Geometry is CPU-side triangle data. Front faces wind counter-clockwise.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (g Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

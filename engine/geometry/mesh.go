// Package geometry builds vertex, normal and index buffers for simple shapes.
package geometry

// Mesh holds flat vertex/normal triples and an optional index list.
// Every index is < VertexCount(). Generators never modify a Mesh after
// returning it.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint16
}

func (m Mesh) VertexCount() int { return len(m.Vertices) / 3 }
func (m Mesh) IndexCount() int  { return len(m.Indices) }

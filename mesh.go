package easel

// PrimitiveMode describes how mesh vertices connect into primitives.
type PrimitiveMode int

const (
	// Triangles connects each group of three vertices into a triangle.
	Triangles PrimitiveMode = iota

	// TriangleStrip connects each vertex to the previous two.
	TriangleStrip

	// TriangleFan connects each vertex pair to the first vertex.
	TriangleFan

	// Lines connects each pair of vertices into a segment.
	Lines

	// LineStrip connects each vertex to the previous one.
	LineStrip

	// LineLoop is LineStrip with a closing segment.
	LineLoop

	// Points draws isolated vertices.
	Points
)

// Mesh is a collection of vertices with optional per-vertex normals,
// texture coordinates, colors, and an optional index list.
type Mesh struct {
	Mode      PrimitiveMode
	Vertices  []Vec3
	Normals   []Vec3
	TexCoords []Vec2
	Colors    []Color
	Indices   []uint32

	colorsDisabled  bool
	texturesOff     bool
	normalsDisabled bool
}

// NewMesh creates an empty triangle mesh.
func NewMesh() *Mesh {
	return &Mesh{Mode: Triangles}
}

// AddVertex appends a vertex.
func (m *Mesh) AddVertex(v Vec3) { m.Vertices = append(m.Vertices, v) }

// AddNormal appends a per-vertex normal.
func (m *Mesh) AddNormal(n Vec3) { m.Normals = append(m.Normals, n) }

// AddTexCoord appends a per-vertex texture coordinate.
func (m *Mesh) AddTexCoord(t Vec2) { m.TexCoords = append(m.TexCoords, t) }

// AddColor appends a per-vertex color.
func (m *Mesh) AddColor(c Color) { m.Colors = append(m.Colors, c) }

// AddIndex appends an index.
func (m *Mesh) AddIndex(i uint32) { m.Indices = append(m.Indices, i) }

// AddTriangle appends three indices forming a triangle.
func (m *Mesh) AddTriangle(i1, i2, i3 uint32) {
	m.Indices = append(m.Indices, i1, i2, i3)
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumIndices returns the number of indices.
func (m *Mesh) NumIndices() int { return len(m.Indices) }

// HasIndices reports whether the mesh is indexed.
func (m *Mesh) HasIndices() bool { return len(m.Indices) > 0 }

// Clear removes all vertex data.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Normals = m.Normals[:0]
	m.TexCoords = m.TexCoords[:0]
	m.Colors = m.Colors[:0]
	m.Indices = m.Indices[:0]
}

// EnableColors re-enables per-vertex colors after DisableColors.
func (m *Mesh) EnableColors() { m.colorsDisabled = false }

// DisableColors draws the mesh with the global color even when
// per-vertex colors are present.
func (m *Mesh) DisableColors() { m.colorsDisabled = true }

// EnableTextures re-enables texture coordinates after DisableTextures.
func (m *Mesh) EnableTextures() { m.texturesOff = false }

// DisableTextures draws the mesh untextured even when coordinates are
// present.
func (m *Mesh) DisableTextures() { m.texturesOff = true }

// EnableNormals re-enables normals after DisableNormals.
func (m *Mesh) EnableNormals() { m.normalsDisabled = false }

// DisableNormals draws the mesh unlit even when normals are present.
func (m *Mesh) DisableNormals() { m.normalsDisabled = true }

// UsingColors reports whether per-vertex colors participate in drawing.
func (m *Mesh) UsingColors() bool {
	return len(m.Colors) > 0 && !m.colorsDisabled
}

// UsingTextures reports whether texture coordinates participate in
// drawing.
func (m *Mesh) UsingTextures() bool {
	return len(m.TexCoords) > 0 && !m.texturesOff
}

// UsingNormals reports whether normals participate in drawing.
func (m *Mesh) UsingNormals() bool {
	return len(m.Normals) > 0 && !m.normalsDisabled
}

// triangleIndices returns the mesh's triangles as flat index triples,
// resolving strips, fans, and unindexed layouts.
func (m *Mesh) triangleIndices() []uint32 {
	idx := m.Indices
	if len(idx) == 0 {
		idx = make([]uint32, len(m.Vertices))
		for i := range idx {
			idx[i] = uint32(i)
		}
	}
	switch m.Mode {
	case TriangleStrip:
		if len(idx) < 3 {
			return nil
		}
		out := make([]uint32, 0, (len(idx)-2)*3)
		for i := 2; i < len(idx); i++ {
			if i%2 == 0 {
				out = append(out, idx[i-2], idx[i-1], idx[i])
			} else {
				out = append(out, idx[i-1], idx[i-2], idx[i])
			}
		}
		return out
	case TriangleFan:
		if len(idx) < 3 {
			return nil
		}
		out := make([]uint32, 0, (len(idx)-2)*3)
		for i := 2; i < len(idx); i++ {
			out = append(out, idx[0], idx[i-1], idx[i])
		}
		return out
	case Triangles:
		return idx[:len(idx)-len(idx)%3]
	default:
		return nil
	}
}

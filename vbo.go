package easel

// Vbo is a retained vertex buffer. Data lives on the CPU side here;
// GL-style backends upload on first use and invalidate when the
// revision changes.
type Vbo struct {
	verts     []Vec3
	normals   []Vec3
	texCoords []Vec2
	colors    []Color
	indices   []uint32

	revision uint64
}

// NewVbo creates an empty vertex buffer.
func NewVbo() *Vbo {
	return &Vbo{}
}

// FromMesh creates a vertex buffer holding a copy of the mesh's data.
func (v *Vbo) FromMesh(m *Mesh) {
	v.SetVertices(m.Vertices)
	v.SetNormals(m.Normals)
	v.SetTexCoords(m.TexCoords)
	v.SetColors(m.Colors)
	v.SetIndices(m.Indices)
}

// SetVertices replaces the position data.
func (v *Vbo) SetVertices(verts []Vec3) {
	v.verts = append(v.verts[:0], verts...)
	v.revision++
}

// SetNormals replaces the normal data.
func (v *Vbo) SetNormals(normals []Vec3) {
	v.normals = append(v.normals[:0], normals...)
	v.revision++
}

// SetTexCoords replaces the texture coordinate data.
func (v *Vbo) SetTexCoords(tc []Vec2) {
	v.texCoords = append(v.texCoords[:0], tc...)
	v.revision++
}

// SetColors replaces the per-vertex color data.
func (v *Vbo) SetColors(colors []Color) {
	v.colors = append(v.colors[:0], colors...)
	v.revision++
}

// SetIndices replaces the index data.
func (v *Vbo) SetIndices(indices []uint32) {
	v.indices = append(v.indices[:0], indices...)
	v.revision++
}

// NumVertices returns the vertex count.
func (v *Vbo) NumVertices() int { return len(v.verts) }

// NumIndices returns the index count.
func (v *Vbo) NumIndices() int { return len(v.indices) }

// HasIndices reports whether index data is present.
func (v *Vbo) HasIndices() bool { return len(v.indices) > 0 }

// Vertices returns the position data. Callers must not mutate it
// without going through a setter, or the revision will not advance.
func (v *Vbo) Vertices() []Vec3 { return v.verts }

// Normals returns the normal data.
func (v *Vbo) Normals() []Vec3 { return v.normals }

// TexCoords returns the texture coordinate data.
func (v *Vbo) TexCoords() []Vec2 { return v.texCoords }

// Colors returns the per-vertex color data.
func (v *Vbo) Colors() []Color { return v.colors }

// Indices returns the index data.
func (v *Vbo) Indices() []uint32 { return v.indices }

// Revision increments on every data change. Backends use it to decide
// when a re-upload is needed.
func (v *Vbo) Revision() uint64 { return v.revision }

// Clear drops all buffer data.
func (v *Vbo) Clear() {
	v.verts = v.verts[:0]
	v.normals = v.normals[:0]
	v.texCoords = v.texCoords[:0]
	v.colors = v.colors[:0]
	v.indices = v.indices[:0]
	v.revision++
}

package easel

// Material configures surface shading when bound to a GLRenderer.
// Begin is called on bind and End on unbind; binds nest in LIFO order.
type Material interface {
	Begin(r GLRenderer)
	End(r GLRenderer)
}

// BasicMaterial is a fixed-function style material: ambient, diffuse,
// specular and emissive terms with a shininess exponent.
type BasicMaterial struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Emissive  Color
	Shininess float64

	saved Color
}

// NewBasicMaterial returns a material with neutral defaults.
func NewBasicMaterial() *BasicMaterial {
	return &BasicMaterial{
		Ambient:   RGBA(0.2, 0.2, 0.2, 1),
		Diffuse:   RGBA(0.8, 0.8, 0.8, 1),
		Specular:  Black,
		Emissive:  Black,
		Shininess: 0.2,
	}
}

// Begin applies the diffuse term as the draw color. Renderers with a
// richer shading model read the remaining terms directly.
func (m *BasicMaterial) Begin(r GLRenderer) {
	m.saved = r.Style().Color
	r.SetColor(m.Diffuse)
}

// End restores the color active before Begin.
func (m *BasicMaterial) End(r GLRenderer) {
	r.SetColor(m.saved)
}

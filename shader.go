package easel

// Shader is a handle to a backend shader program. The root package
// only tracks source and uniform values; compilation happens in the
// backend when the shader is first bound.
type Shader struct {
	vertexSource   string
	fragmentSource string

	uniforms map[string][]float64
	loaded   bool
}

// NewShader creates an empty shader handle.
func NewShader() *Shader {
	return &Shader{uniforms: make(map[string][]float64)}
}

// Setup stores the shader sources. The previous program, if any, is
// discarded on the next bind.
func (s *Shader) Setup(vertexSource, fragmentSource string) {
	s.vertexSource = vertexSource
	s.fragmentSource = fragmentSource
	s.loaded = vertexSource != "" || fragmentSource != ""
}

// IsLoaded reports whether sources have been set.
func (s *Shader) IsLoaded() bool { return s.loaded }

// VertexSource returns the vertex stage source.
func (s *Shader) VertexSource() string { return s.vertexSource }

// FragmentSource returns the fragment stage source.
func (s *Shader) FragmentSource() string { return s.fragmentSource }

// SetUniform stores float uniform values under a name.
func (s *Shader) SetUniform(name string, values ...float64) {
	s.uniforms[name] = append([]float64(nil), values...)
}

// Uniform returns the stored values for a uniform name.
func (s *Shader) Uniform(name string) ([]float64, bool) {
	v, ok := s.uniforms[name]
	return v, ok
}

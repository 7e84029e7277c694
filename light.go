package easel

// MaxLights is the number of light slots a GL-style renderer carries,
// matching the fixed-function minimum.
const MaxLights = 8

// Light is one slot of the renderer's lighting block. A spot cutoff of
// 180 degrees means the light is a point or directional light rather
// than a spotlight.
type Light struct {
	Enabled bool

	Ambient  Color
	Diffuse  Color
	Specular Color

	// Position with w=1 is a point light, w=0 a directional light
	// shining along -xyz.
	Position Vec4

	SpotDirection     Vec4
	SpotCutOff        float64
	SpotConcentration float64

	// distance attenuation coefficients
	AttenuationConstant  float64
	AttenuationLinear    float64
	AttenuationQuadratic float64
}

// LightingState is the renderer-global lighting block. It is not part
// of the stacked state: values persist until changed.
type LightingState struct {
	Enabled          bool
	SeparateSpecular bool
	Smooth           bool
	GlobalAmbient    Color
	Lights           [MaxLights]Light
}

func defaultLight() Light {
	return Light{
		Diffuse:             White,
		Specular:            White,
		Position:            V4(0, 0, 1, 0),
		SpotDirection:       V4(0, 0, -1, 0),
		SpotCutOff:          180,
		AttenuationConstant: 1,
	}
}

// NewLightingState returns a lighting block with fixed-function
// defaults: smooth shading, a dim global ambient, and every light
// disabled but configured as a white directional light.
func NewLightingState() *LightingState {
	ls := &LightingState{
		Smooth:        true,
		GlobalAmbient: RGBA(0.2, 0.2, 0.2, 1),
	}
	for i := range ls.Lights {
		ls.Lights[i] = defaultLight()
	}
	return ls
}

// light returns the addressed slot, or nil when index is out of range.
func (ls *LightingState) light(index int) *Light {
	if index < 0 || index >= MaxLights {
		return nil
	}
	return &ls.Lights[index]
}

package core

// Bounds for the two exposed displacement parameters. External values are
// clamped into these ranges; the shading darkness term divides by SpikeLength
// and relies on it staying bounded away from zero.
const (
	SpikeDetailMin = 1.0
	SpikeDetailMax = 50.0
	SpikeLengthMin = 1.0
	SpikeLengthMax = 1.5
)

// Params holds the tunables baked into a mesh instance at build time. The
// shared settings record is a Params value owned by the app; mesh instances
// copy it when built and never re-read it per frame.
type Params struct {
	SpikeDetail float64
	SpikeLength float64
}

// DefaultParams returns the startup parameter set.
func DefaultParams() Params {
	return Params{SpikeDetail: 14, SpikeLength: 1.15}
}

// Clamped returns a copy with both values forced into their documented ranges.
func (p Params) Clamped() Params {
	p.SpikeDetail = clampFloat(p.SpikeDetail, SpikeDetailMin, SpikeDetailMax)
	p.SpikeLength = clampFloat(p.SpikeLength, SpikeLengthMin, SpikeLengthMax)
	return p
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ParamType enumerates supported HUD control kinds.
type ParamType string

const (
	// ParamTypeFloat denotes floating-point slider controls.
	ParamTypeFloat ParamType = "float"
	// ParamTypeTrigger denotes one-shot button controls.
	ParamTypeTrigger ParamType = "trigger"
)

// ParameterControl describes an adjustable value or trigger that should be
// exposed on the HUD. Step and bounds apply to float controls only.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// FloatParameterGetter exposes current float parameter values to the HUD.
type FloatParameterGetter interface {
	FloatParameter(key string) (float64, bool)
}

// FloatParameterSetter allows HUD interactions to update float parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// TriggerHandler allows HUD buttons to fire one-shot actions.
type TriggerHandler interface {
	Trigger(key string) bool
}

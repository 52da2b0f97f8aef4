package engine

import "fmt"

// Global parameter track geometry. Each track stores a step index; the
// public surface converts to and from display values.
//
//	oceans       0..9   step 1  (10 levels)
//	oxygen       0..14  step 1  (15 levels)
//	temperature  -30..8 step 2  (20 levels)
//	venus        0..30  step 2  (16 levels)
const (
	oceanMaxSteps       = 9
	oxygenMaxSteps      = 14
	temperatureMaxSteps = 19
	venusMaxSteps       = 15

	temperatureBase = -30
)

// GlobalParameters tracks the terraforming state. Parameters only ever move
// upward; both Increase and Set saturate at each track's maximum.
type GlobalParameters struct {
	OceanSteps       uint8 `json:"ocean_steps"`
	OxygenSteps      uint8 `json:"oxygen_steps"`
	TemperatureSteps uint8 `json:"temperature_steps"`
	VenusSteps       uint8 `json:"venus_steps"`
}

// NewGlobalParameters returns a track with every parameter at its minimum.
func NewGlobalParameters() GlobalParameters {
	return GlobalParameters{}
}

func (gp *GlobalParameters) steps(p GlobalParameter) uint8 {
	switch p {
	case ParamOceans:
		return gp.OceanSteps
	case ParamOxygen:
		return gp.OxygenSteps
	case ParamTemperature:
		return gp.TemperatureSteps
	case ParamVenus:
		return gp.VenusSteps
	}
	return 0
}

func (gp *GlobalParameters) setSteps(p GlobalParameter, s uint8) {
	switch p {
	case ParamOceans:
		gp.OceanSteps = s
	case ParamOxygen:
		gp.OxygenSteps = s
	case ParamTemperature:
		gp.TemperatureSteps = s
	case ParamVenus:
		gp.VenusSteps = s
	}
}

func maxSteps(p GlobalParameter) uint8 {
	switch p {
	case ParamOceans:
		return oceanMaxSteps
	case ParamOxygen:
		return oxygenMaxSteps
	case ParamTemperature:
		return temperatureMaxSteps
	case ParamVenus:
		return venusMaxSteps
	}
	return 0
}

// StepSize returns the display-value distance between adjacent steps.
func StepSize(p GlobalParameter) int {
	switch p {
	case ParamTemperature, ParamVenus:
		return 2
	default:
		return 1
	}
}

func baseValue(p GlobalParameter) int {
	if p == ParamTemperature {
		return temperatureBase
	}
	return 0
}

// Get returns the parameter's current display value.
func (gp *GlobalParameters) Get(p GlobalParameter) int {
	return baseValue(p) + int(gp.steps(p))*StepSize(p)
}

// Max returns the parameter's maximum display value.
func (gp *GlobalParameters) Max(p GlobalParameter) int {
	return baseValue(p) + int(maxSteps(p))*StepSize(p)
}

// AtMax reports whether the parameter is saturated.
func (gp *GlobalParameters) AtMax(p GlobalParameter) bool {
	return gp.steps(p) >= maxSteps(p)
}

// CanIncrease reports whether at least one more step is available.
func (gp *GlobalParameters) CanIncrease(p GlobalParameter) bool {
	return !gp.AtMax(p)
}

// Increase raises the parameter by up to steps and returns the number of
// steps actually applied after saturation. A negative request applies zero.
func (gp *GlobalParameters) Increase(p GlobalParameter, steps int) int {
	if steps <= 0 {
		return 0
	}
	cur := gp.steps(p)
	room := int(maxSteps(p)) - int(cur)
	if steps > room {
		steps = room
	}
	gp.setSteps(p, cur+uint8(steps))
	return steps
}

// Set moves the parameter to the step nearest the given display value,
// clamped to the track. Parameters never decrease: a target below the
// current value leaves the track unchanged.
func (gp *GlobalParameters) Set(p GlobalParameter, value int) {
	size := StepSize(p)
	offset := value - baseValue(p)
	step := (offset + size/2) / size
	if offset < 0 {
		step = 0
	}
	if step > int(maxSteps(p)) {
		step = int(maxSteps(p))
	}
	if uint8(step) > gp.steps(p) {
		gp.setSteps(p, uint8(step))
	}
}

// ValidValue reports whether value lands exactly on a step of the track.
func (gp *GlobalParameters) ValidValue(p GlobalParameter, value int) bool {
	size := StepSize(p)
	offset := value - baseValue(p)
	if offset < 0 || offset%size != 0 {
		return false
	}
	return offset/size <= int(maxSteps(p))
}

// Terraformed reports whether every tracked parameter has saturated. Venus
// participates only when includeVenus is set.
func (gp *GlobalParameters) Terraformed(includeVenus bool) bool {
	if !gp.AtMax(ParamOceans) || !gp.AtMax(ParamOxygen) || !gp.AtMax(ParamTemperature) {
		return false
	}
	if includeVenus && !gp.AtMax(ParamVenus) {
		return false
	}
	return true
}

func (gp *GlobalParameters) String() string {
	return fmt.Sprintf("oceans=%d oxygen=%d%% temperature=%d venus=%d",
		gp.Get(ParamOceans), gp.Get(ParamOxygen), gp.Get(ParamTemperature), gp.Get(ParamVenus))
}

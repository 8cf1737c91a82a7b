package params

import (
	"github.com/rotblauer/yfall/common"
)

// TimeRange describes the evenly spaced time samples at which height is evaluated.
// Stop is exclusive.
type TimeRange struct {
	Start float64
	Stop  float64
	Step  float64
}

// DefaultTimeRange yields 3000 samples over [0, 300).
var DefaultTimeRange = TimeRange{
	Start: 0,
	Stop:  300,
	Step:  0.1,
}

func (r TimeRange) Samples() []float64 {
	return common.Arange(r.Start, r.Stop, r.Step)
}

type FallConfig struct {
	// V0 is the initial (launch) velocity.
	V0 float64

	// X0 is the initial position.
	X0 float64

	// Acceleration is applied as-is in a*t^2, without a 1/2 factor.
	Acceleration float64

	TimeRange TimeRange

	// Format names the stdout rendering, see render.ParseFormat.
	Format string

	// Precision is the number of decimals printed per value.
	// Negative prints the shortest exact representation.
	Precision int

	// Breakpoint names the inspection mode, see inspect.ParseMode.
	Breakpoint string
}

func DefaultFallConfig() *FallConfig {
	return &FallConfig{
		V0:           common.DefaultLaunchVelocity,
		X0:           common.DefaultLaunchPosition,
		Acceleration: common.GravityEarth,
		TimeRange:    DefaultTimeRange,
		Format:       "array",
		Precision:    -1,
		Breakpoint:   "log",
	}
}

package kinematics

import (
	"math"

	"github.com/rotblauer/yfall/common"
)

// Height returns the vertical position at time t for a body launched from x0 with velocity v0
// under common.GravityEarth: a*t^2 + v0*t + x0.
func Height(t, x0, v0 float64) float64 {
	return HeightA(common.GravityEarth, t, x0, v0)
}

// HeightA is Height with an explicit acceleration term.
func HeightA(a, t, x0, v0 float64) float64 {
	return a*t*t + v0*t + x0
}

// Heights applies Height element-wise. The input is not modified.
func Heights(ts []float64, x0, v0 float64) []float64 {
	return Projectile{X0: x0, V0: v0, A: common.GravityEarth}.Heights(ts)
}

type Projectile struct {
	X0 float64
	V0 float64
	A  float64
}

// NewProjectile returns a projectile under Earth gravity.
func NewProjectile(x0, v0 float64) Projectile {
	return Projectile{X0: x0, V0: v0, A: common.GravityEarth}
}

func (p Projectile) Height(t float64) float64 {
	return HeightA(p.A, t, p.X0, p.V0)
}

func (p Projectile) Heights(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = p.Height(t)
	}
	return out
}

// Apex returns the turning point of the height curve.
// Since the model has no 1/2 factor, dy/dt = 2at + v0.
// The apex may lie at negative time, or be a minimum when A > 0.
func (p Projectile) Apex() (t, y float64, ok bool) {
	if p.A == 0 {
		return 0, 0, false
	}
	t = -p.V0 / (2 * p.A)
	return t, p.Height(t), true
}

// Impact returns the latest non-negative time at which height is zero.
func (p Projectile) Impact() (t float64, ok bool) {
	if p.A == 0 {
		if p.V0 == 0 {
			return 0, p.X0 == 0
		}
		t = -p.X0 / p.V0
		return t, t >= 0
	}
	disc := p.V0*p.V0 - 4*p.A*p.X0
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (-p.V0 - sq) / (2 * p.A)
	r2 := (-p.V0 + sq) / (2 * p.A)
	t = math.Max(r1, r2)
	if t < 0 {
		return 0, false
	}
	return t, true
}

package kinematics

import (
	"math"
	"testing"

	"github.com/rotblauer/yfall/common"
	"github.com/rotblauer/yfall/params"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestHeight(t *testing.T) {
	cases := []struct {
		t, x0, v0 float64
		expected  float64
	}{
		{0, 0, 2520, 0},
		{1, 0, 2520, 2510.2},
		{10, 0, 2520, 24220.0},
		{0, 42, -7, 42},
		{2.5, 3, 4, -9.8*2.5*2.5 + 4*2.5 + 3},
	}
	for _, c := range cases {
		got := Height(c.t, c.x0, c.v0)
		if !almostEqual(got, c.expected) {
			t.Errorf("Height(%v, %v, %v): expected %v, got %v", c.t, c.x0, c.v0, c.expected, got)
		}
	}
}

func TestHeight_Identity(t *testing.T) {
	for _, tt := range []float64{-3, 0, 0.1, 1, 17.3, 299.9} {
		for _, x0 := range []float64{-100, 0, 12.5} {
			for _, v0 := range []float64{-50, 0, 2520} {
				expected := -9.8*tt*tt + v0*tt + x0
				if got := Height(tt, x0, v0); math.Abs(got-expected) >= tolerance {
					t.Errorf("Height(%v, %v, %v): expected %v, got %v", tt, x0, v0, expected, got)
				}
			}
		}
	}
}

func TestHeight_AtZeroIsX0(t *testing.T) {
	for _, v0 := range []float64{-1e6, -1, 0, 1, 2520, 1e6} {
		if got := Height(0, 7.25, v0); got != 7.25 {
			t.Errorf("Expected 7.25 for v0=%v, got %v", v0, got)
		}
	}
}

func TestHeight_Idempotent(t *testing.T) {
	a := Height(123.4, 5, 2520)
	b := Height(123.4, 5, 2520)
	if a != b {
		t.Errorf("Expected repeated calls to agree, got %v and %v", a, b)
	}
}

func TestHeights_ElementWise(t *testing.T) {
	ts := params.DefaultTimeRange.Samples()
	orig := append([]float64(nil), ts...)
	ys := Heights(ts, 0, 2520)
	if len(ys) != len(ts) {
		t.Fatalf("Expected %d heights, got %d", len(ts), len(ys))
	}
	for i := range ts {
		if ys[i] != Height(ts[i], 0, 2520) {
			t.Fatalf("Expected element %d to be %v, got %v", i, Height(ts[i], 0, 2520), ys[i])
		}
		if ts[i] != orig[i] {
			t.Fatalf("Expected input unchanged at %d", i)
		}
	}
}

func TestHeights_Empty(t *testing.T) {
	ys := Heights(nil, 0, 2520)
	if ys == nil || len(ys) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", ys)
	}
}

func TestProjectile_MatchesHeight(t *testing.T) {
	p := NewProjectile(0, 2520)
	if p.A != common.GravityEarth {
		t.Errorf("Expected A %v, got %v", common.GravityEarth, p.A)
	}
	if got := p.Height(10); !almostEqual(got, 24220) {
		t.Errorf("Expected 24220, got %v", got)
	}

	moon := Projectile{X0: 0, V0: 10, A: -0.81}
	if got := moon.Height(2); !almostEqual(got, -0.81*4+20) {
		t.Errorf("Expected %v, got %v", -0.81*4+20, got)
	}
}

func TestProjectile_Apex(t *testing.T) {
	p := NewProjectile(0, 2520)
	at, ay, ok := p.Apex()
	if !ok {
		t.Fatal("Expected apex")
	}
	if !almostEqual(at, 2520/19.6) {
		t.Errorf("Expected apex time %v, got %v", 2520/19.6, at)
	}
	if expected := p.Height(2520 / 19.6); !almostEqual(ay, expected) {
		t.Errorf("Expected apex height %v, got %v", expected, ay)
	}
	if _, _, ok := (Projectile{V0: 1}).Apex(); ok {
		t.Error("Expected no apex without acceleration")
	}
}

func TestProjectile_Impact(t *testing.T) {
	p := NewProjectile(0, 2520)
	it, ok := p.Impact()
	if !ok {
		t.Fatal("Expected impact")
	}
	if math.Abs(it-2520/9.8) > 1e-6 {
		t.Errorf("Expected impact time %v, got %v", 2520/9.8, it)
	}
	if h := p.Height(it); math.Abs(h) > 1e-6 {
		t.Errorf("Expected zero height at impact, got %v", h)
	}

	dropped := NewProjectile(100, 0)
	it, ok = dropped.Impact()
	if !ok || !almostEqual(it, math.Sqrt(100/9.8)) {
		t.Errorf("Expected impact at %v, got %v (ok=%v)", math.Sqrt(100/9.8), it, ok)
	}

	// Falling upward never lands.
	if _, ok := (Projectile{X0: 1, V0: 1, A: 9.8}).Impact(); ok {
		t.Error("Expected no impact")
	}

	// Linear motion.
	it, ok = Projectile{X0: 10, V0: -2}.Impact()
	if !ok || it != 5 {
		t.Errorf("Expected impact at 5, got %v (ok=%v)", it, ok)
	}
	if _, ok := (Projectile{X0: 10, V0: 2}).Impact(); ok {
		t.Error("Expected no impact when moving away")
	}
}

package combat

import (
	"math"
	"testing"

	"github.com/lixenwraith/gunplay/vmath"
)

func TestCrosshairAtRest(t *testing.T) {
	var c Crosshair
	if got := c.Update(1.0/60, vmath.Vec3F{}, false, false, false); got != 0.5 {
		t.Errorf("Expected base spread 0.5, got %f", got)
	}
}

func TestCrosshairVelocityFactor(t *testing.T) {
	var c Crosshair
	c.Update(1.0/60, vmath.Vec3F{X: 300, Z: -5000}, false, false, false)
	if math.Abs(c.Velocity-0.5) > 1e-9 {
		t.Errorf("Expected velocity factor 0.5 ignoring Z, got %f", c.Velocity)
	}

	c.Update(1.0/60, vmath.Vec3F{X: 900}, false, false, false)
	if c.Velocity != 1 {
		t.Errorf("Expected velocity factor clamped to 1, got %f", c.Velocity)
	}
}

func TestCrosshairConverges(t *testing.T) {
	var c Crosshair
	for i := 0; i < 600; i++ {
		c.Update(1.0/60, vmath.Vec3F{}, true, true, true)
	}
	want := 0.5 + 2.25 - 0.5 + 0.4
	if math.Abs(c.Spread()-want) > 1e-3 {
		t.Errorf("Expected spread near %f, got %f", want, c.Spread())
	}

	for i := 0; i < 600; i++ {
		c.Update(1.0/60, vmath.Vec3F{}, false, false, false)
	}
	if math.Abs(c.Spread()-0.5) > 1e-3 {
		t.Errorf("Expected spread back to 0.5, got %f", c.Spread())
	}
}

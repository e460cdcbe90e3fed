package combat

import (
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// Crosshair accumulates the spread factors fed to the HUD
type Crosshair struct {
	Velocity float64
	InAir    float64
	Aim      float64
	Shooting float64
}

// Update eases each factor toward its target and returns the new spread
func (c *Crosshair) Update(dt float64, velocity vmath.Vec3F, falling, aiming, firing bool) float64 {
	c.Velocity = vmath.MapRangeClamped(0, parameter.CombatCrosshairWalkSpeedRange, 0, 1, vmath.V3FMag2D(velocity))

	if falling {
		c.InAir = vmath.FInterpTo(c.InAir, parameter.CombatCrosshairInAirTarget, dt, parameter.CombatCrosshairInAirRate)
	} else {
		c.InAir = vmath.FInterpTo(c.InAir, 0, dt, parameter.CombatCrosshairLandRate)
	}

	aimTarget := 0.0
	if aiming {
		aimTarget = parameter.CombatCrosshairAimTarget
	}
	c.Aim = vmath.FInterpTo(c.Aim, aimTarget, dt, parameter.CombatCrosshairAimRate)

	shootTarget := 0.0
	if firing {
		shootTarget = parameter.CombatCrosshairShootTarget
	}
	c.Shooting = vmath.FInterpTo(c.Shooting, shootTarget, dt, parameter.CombatCrosshairShootRate)

	return c.Spread()
}

// Spread is the current multiplier, 0.5 at rest
func (c *Crosshair) Spread() float64 {
	return parameter.CombatCrosshairBase + c.Velocity + c.InAir + c.Aim + c.Shooting
}

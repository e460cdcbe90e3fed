package vmath

import (
	"math"
)

// FInterpTo eases current toward target with frame-rate independent exponential decay:
// new = current + (target-current) * (1 - e^(-speed*dt))
// Non-positive speed snaps to target; non-positive dt returns current
func FInterpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	if dt <= 0 {
		return current
	}
	dist := target - current
	if dist*dist < SmallNumber {
		return target
	}
	return current + dist*(1-math.Exp(-speed*dt))
}

// V3FInterpTo applies FInterpTo per component
func V3FInterpTo(current, target Vec3F, dt, speed float64) Vec3F {
	return Vec3F{
		X: FInterpTo(current.X, target.X, dt, speed),
		Y: FInterpTo(current.Y, target.Y, dt, speed),
		Z: FInterpTo(current.Z, target.Z, dt, speed),
	}
}

package vmath

import (
	"math"
)

// Rotator is an Euler rotation in degrees; yaw about Z, pitch about Y, roll about X
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// YawOnly drops pitch and roll, used for movement and throw directions
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

// Forward returns the unit X axis of the rotation
func (r Rotator) Forward() Vec3F {
	sp, cp := math.Sincos(r.Pitch * DegToRad)
	sy, cy := math.Sincos(r.Yaw * DegToRad)
	return Vec3F{X: cp * cy, Y: cp * sy, Z: sp}
}

// Right returns the unit Y axis of the rotation
func (r Rotator) Right() Vec3F {
	sp, cp := math.Sincos(r.Pitch * DegToRad)
	sy, cy := math.Sincos(r.Yaw * DegToRad)
	sr, cr := math.Sincos(r.Roll * DegToRad)
	return Vec3F{
		X: sr*sp*cy - cr*sy,
		Y: sr*sp*sy + cr*cy,
		Z: -sr * cp,
	}
}

// Up returns the unit Z axis of the rotation
func (r Rotator) Up() Vec3F {
	return V3FCross(r.Forward(), r.Right())
}

// Transform is a world placement without scale
type Transform struct {
	Location Vec3F
	Rotation Rotator
}

// TransformPosition maps a local offset into world space (rotation then translation)
func (t Transform) TransformPosition(local Vec3F) Vec3F {
	f := t.Rotation.Forward()
	r := t.Rotation.Right()
	u := t.Rotation.Up()
	world := V3FScale(f, local.X)
	world = V3FAdd(world, V3FScale(r, local.Y))
	world = V3FAdd(world, V3FScale(u, local.Z))
	return V3FAdd(t.Location, world)
}

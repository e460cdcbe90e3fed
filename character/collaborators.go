package character

import (
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/vmath"
)

// Tracer reports the item under the crosshair, if any
type Tracer interface {
	ItemUnderCrosshair() (item.ID, bool)
}

// Body is the movement component driving the character capsule
type Body interface {
	Velocity() vmath.Vec3F
	IsFalling() bool
	AddMovementInput(direction vmath.Vec3F, scale float64)
	Jump()
	SetMaxWalkSpeed(speed float64)
	SetGroundFriction(friction float64)
}

// nopTracer never finds anything
type nopTracer struct{}

func (nopTracer) ItemUnderCrosshair() (item.ID, bool) { return 0, false }

// staticBody stands still on the ground
type staticBody struct{}

func (staticBody) Velocity() vmath.Vec3F { return vmath.Vec3F{} }
func (staticBody) IsFalling() bool { return false }
func (staticBody) AddMovementInput(vmath.Vec3F, float64) {}
func (staticBody) Jump() {}
func (staticBody) SetMaxWalkSpeed(float64) {}
func (staticBody) SetGroundFriction(float64) {}

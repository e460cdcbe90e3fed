package item

import (
	"github.com/lixenwraith/gunplay/vmath"
)

// CollisionMode is the collision profile requested for an item
type CollisionMode uint8

const (
	CollisionNone        CollisionMode = iota
	CollisionQuery                     // Hit by the crosshair trace only
	CollisionWorldStatic               // Blocks and bounces off world geometry
)

// Glow is the material parameter set driven by the pulse curves
type Glow struct {
	Enabled                bool
	Amount                 float64
	FresnelExponent        float64
	FresnelReflectFraction float64
	Color                  Color
}

// Presenter applies item presentation in the host (renderer, physics, widgets)
type Presenter interface {
	SetVisible(id ID, visible bool)
	SetCollision(id ID, mode CollisionMode)
	SetSimulatePhysics(id ID, simulate bool)
	ApplyImpulse(id ID, impulse vmath.Vec3F)
	AttachTo(id ID, socket string)
	DetachFromWorld(id ID)
	SetCustomDepth(id ID, enabled bool, stencil int)
	SetPickupWidgetVisible(id ID, visible bool)
	SetGlow(id ID, glow Glow)
}

// NopPresenter discards presentation requests, for headless runs
type NopPresenter struct{}

func (NopPresenter) SetVisible(ID, bool) {}
func (NopPresenter) SetCollision(ID, CollisionMode) {}
func (NopPresenter) SetSimulatePhysics(ID, bool) {}
func (NopPresenter) ApplyImpulse(ID, vmath.Vec3F) {}
func (NopPresenter) AttachTo(ID, string) {}
func (NopPresenter) DetachFromWorld(ID) {}
func (NopPresenter) SetCustomDepth(ID, bool, int) {}
func (NopPresenter) SetPickupWidgetVisible(ID, bool) {}
func (NopPresenter) SetGlow(ID, Glow) {}

// presentation is the fixed bundle applied per state
type presentation struct {
	visible   bool
	physics   bool
	collision CollisionMode
	// hideWidget forces the pickup widget off; false leaves it unchanged
	hideWidget bool
}

var statePresentation = map[State]presentation{
	StatePickup:         {visible: true, physics: false, collision: CollisionQuery},
	StateEquipInterping: {visible: true, physics: false, collision: CollisionNone, hideWidget: true},
	StatePickedUp:       {visible: false, physics: false, collision: CollisionNone, hideWidget: true},
	StateEquipped:       {visible: true, physics: false, collision: CollisionNone, hideWidget: true},
	StateFalling:        {visible: true, physics: true, collision: CollisionWorldStatic},
}

package main

import (
	"math"
	"time"

	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// Arena dimensions and simple physics, in world units
const (
	arenaWidth  = 6000.0
	arenaHeight = 3000.0

	gravity       = -980.0
	jumpVelocity  = 420.0
	itemMass      = 20.0
	itemDrag      = 2.5
	itemBounce    = 0.3
	eyeHeight     = 64.0
	handHeight    = 40.0
	pickupRadius  = 180.0
	traceRadius   = 90.0
	inputHoldTime = 150 * time.Millisecond
)

// presence is what the arena renders and simulates for one item
type presence struct {
	visible   bool
	physics   bool
	collision item.CollisionMode
	widget    bool
	outline   bool
	glow      item.Glow
	attached  string
	velocity  vmath.Vec3F
}

// arena is the host side of items: it implements item.Presenter, simulates
// thrown items and reports pickup sphere overlaps
type arena struct {
	world     *item.World
	items     map[item.ID]*presence
	overlaps  map[item.ID]bool
	onOverlap func(delta int)
}

func newArena() *arena {
	return &arena{
		items:    make(map[item.ID]*presence),
		overlaps: make(map[item.ID]bool),
	}
}

func (a *arena) get(id item.ID) *presence {
	p, ok := a.items[id]
	if !ok {
		p = &presence{}
		a.items[id] = p
	}
	return p
}

func (a *arena) SetVisible(id item.ID, visible bool) {
	a.get(id).visible = visible
}

func (a *arena) SetCollision(id item.ID, mode item.CollisionMode) {
	a.get(id).collision = mode
}

func (a *arena) SetSimulatePhysics(id item.ID, simulate bool) {
	p := a.get(id)
	p.physics = simulate
	if !simulate {
		p.velocity = vmath.Vec3F{}
	}
}

func (a *arena) ApplyImpulse(id item.ID, impulse vmath.Vec3F) {
	p := a.get(id)
	p.velocity = vmath.V3FAdd(p.velocity, vmath.V3FScale(impulse, 1/itemMass))
}

func (a *arena) AttachTo(id item.ID, socket string) {
	a.get(id).attached = socket
}

func (a *arena) DetachFromWorld(id item.ID) {
	a.get(id).attached = ""
}

func (a *arena) SetCustomDepth(id item.ID, enabled bool, _ int) {
	a.get(id).outline = enabled
}

func (a *arena) SetPickupWidgetVisible(id item.ID, visible bool) {
	a.get(id).widget = visible
}

func (a *arena) SetGlow(id item.ID, glow item.Glow) {
	a.get(id).glow = glow
}

// simulate integrates thrown items and drops records of destroyed ones
func (a *arena) simulate(dt time.Duration) {
	step := dt.Seconds()
	for id, p := range a.items {
		it, ok := a.world.Get(id)
		if !ok {
			delete(a.items, id)
			if a.overlaps[id] {
				delete(a.overlaps, id)
				a.notifyOverlap(-1)
			}
			continue
		}
		if !p.physics {
			continue
		}

		p.velocity.Z += gravity * step
		loc := vmath.V3FAdd(it.Transform.Location, vmath.V3FScale(p.velocity, step))

		if loc.Z <= 0 {
			loc.Z = 0
			p.velocity.Z = -p.velocity.Z * itemBounce
			p.velocity.X = vmath.FInterpTo(p.velocity.X, 0, step, itemDrag)
			p.velocity.Y = vmath.FInterpTo(p.velocity.Y, 0, step, itemDrag)
		}
		if loc.X < 0 || loc.X > arenaWidth {
			loc.X = vmath.Clamp(loc.X, 0, arenaWidth)
			p.velocity.X = -p.velocity.X * itemBounce
		}
		if loc.Y < 0 || loc.Y > arenaHeight {
			loc.Y = vmath.Clamp(loc.Y, 0, arenaHeight)
			p.velocity.Y = -p.velocity.Y * itemBounce
		}
		it.Transform.Location = loc
	}
}

// updateOverlaps compares the character position with every pickup sphere
// Spheres only exist while the item has query collision
func (a *arena) updateOverlaps(at vmath.Vec3F) {
	for id, p := range a.items {
		it, ok := a.world.Get(id)
		inside := ok && p.collision == item.CollisionQuery &&
			vmath.V3FMag2D(vmath.V3FSub(it.Transform.Location, at)) <= pickupRadius
		if inside == a.overlaps[id] {
			continue
		}
		if inside {
			a.overlaps[id] = true
			a.notifyOverlap(1)
		} else {
			delete(a.overlaps, id)
			a.notifyOverlap(-1)
		}
	}
}

func (a *arena) notifyOverlap(delta int) {
	if a.onOverlap != nil {
		a.onOverlap(delta)
	}
}

// tracer casts the crosshair ray along the camera yaw
type tracer struct {
	arena  *arena
	camera func() vmath.Transform
}

func (t *tracer) ItemUnderCrosshair() (item.ID, bool) {
	cam := t.camera()
	dir := cam.Rotation.YawOnly().Forward()

	best, bestT := item.ID(0), math.Inf(1)
	for id, p := range t.arena.items {
		if p.collision != item.CollisionQuery {
			continue
		}
		it, ok := t.arena.world.Get(id)
		if !ok {
			continue
		}
		rel := vmath.V3FSub(it.Transform.Location, cam.Location)
		rel.Z = 0
		along := vmath.V3FDot(rel, dir)
		if along < 0 || along > parameter.CharacterItemTraceDistance {
			continue
		}
		perp := vmath.V3FMag2D(vmath.V3FSub(rel, vmath.V3FScale(dir, along)))
		if perp <= traceRadius && along < bestT {
			best, bestT = id, along
		}
	}
	return best, best != 0
}

// body is a top-down capsule with ground friction and a jump arc
type body struct {
	location vmath.Vec3F
	velocity vmath.Vec3F

	maxWalkSpeed float64
	friction     float64

	input     vmath.Vec3F
	inputLeft time.Duration
}

func newBody(at vmath.Vec3F) *body {
	return &body{location: at}
}

func (b *body) Velocity() vmath.Vec3F { return b.velocity }

func (b *body) IsFalling() bool { return b.location.Z > 0 || b.velocity.Z > 0 }

// AddMovementInput holds the direction for a short time; terminals report key presses only
func (b *body) AddMovementInput(direction vmath.Vec3F, scale float64) {
	b.input = vmath.V3FAdd(b.input, vmath.V3FScale(direction, scale))
	b.inputLeft = inputHoldTime
}

func (b *body) Jump() {
	if b.IsFalling() {
		return
	}
	b.velocity.Z = jumpVelocity
}

func (b *body) SetMaxWalkSpeed(speed float64) { b.maxWalkSpeed = speed }

func (b *body) SetGroundFriction(friction float64) { b.friction = friction }

func (b *body) update(dt time.Duration) {
	step := dt.Seconds()

	if b.inputLeft > 0 {
		dir := vmath.V3FNormalize(vmath.Vec3F{X: b.input.X, Y: b.input.Y})
		b.velocity.X = dir.X * b.maxWalkSpeed
		b.velocity.Y = dir.Y * b.maxWalkSpeed
		b.inputLeft -= dt
		if b.inputLeft <= 0 {
			b.input = vmath.Vec3F{}
		}
	} else if !b.IsFalling() {
		b.velocity.X = vmath.FInterpTo(b.velocity.X, 0, step, b.friction+8)
		b.velocity.Y = vmath.FInterpTo(b.velocity.Y, 0, step, b.friction+8)
	}

	if b.IsFalling() {
		b.velocity.Z += gravity * step
	}
	b.location = vmath.V3FAdd(b.location, vmath.V3FScale(b.velocity, step))
	if b.location.Z <= 0 {
		b.location.Z = 0
		b.velocity.Z = 0
	}
	b.location.X = vmath.Clamp(b.location.X, 0, arenaWidth)
	b.location.Y = vmath.Clamp(b.location.Y, 0, arenaHeight)
}

func (b *body) eye() vmath.Vec3F {
	return vmath.V3FAdd(b.location, vmath.Vec3F{Z: eyeHeight})
}

package character

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunplay/combat"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/pickup"
	"github.com/lixenwraith/gunplay/status"
	"github.com/lixenwraith/gunplay/vmath"
)

// Settings configure a character and the machines it owns
type Settings struct {
	Combat      combat.Settings
	Pickup      pickup.Settings
	SoundReset  time.Duration
	SlotOffsets []vmath.Vec3F

	StartingAmmo map[item.AmmoType]int

	DefaultFOV float64
	ZoomedFOV  float64
	ZoomSpeed  float64

	HipTurnRate   float64
	HipLookUpRate float64
	AimTurnRate   float64
	AimLookUpRate float64

	MouseHipTurnRate   float64
	MouseHipLookUpRate float64
	MouseAimTurnRate   float64
	MouseAimLookUpRate float64

	BaseSpeed   float64
	CrouchSpeed float64
}

// DefaultSettings returns the stock camera, movement and starting ammo tuning
func DefaultSettings() Settings {
	return Settings{
		Combat:      combat.DefaultSettings(),
		Pickup:      pickup.DefaultSettings(),
		SoundReset:  parameter.PickupSoundResetTime,
		SlotOffsets: pickup.DefaultSlotOffsets(),
		StartingAmmo: map[item.AmmoType]int{
			item.Ammo9mm: parameter.CombatStartingAmmo9mm,
			item.AmmoAR:  parameter.CombatStartingAmmoAR,
		},

		DefaultFOV: parameter.CameraDefaultFOV,
		ZoomedFOV:  parameter.CameraZoomedFOV,
		ZoomSpeed:  parameter.CameraZoomInterpSpeed,

		HipTurnRate:   parameter.CameraHipTurnRate,
		HipLookUpRate: parameter.CameraHipLookUpRate,
		AimTurnRate:   parameter.CameraAimTurnRate,
		AimLookUpRate: parameter.CameraAimLookUpRate,

		MouseHipTurnRate:   parameter.CameraMouseHipTurnRate,
		MouseHipLookUpRate: parameter.CameraMouseHipLookUpRate,
		MouseAimTurnRate:   parameter.CameraMouseAimTurnRate,
		MouseAimLookUpRate: parameter.CameraMouseAimLookUpRate,

		BaseSpeed:   parameter.CharacterBaseMovementSpeed,
		CrouchSpeed: parameter.CharacterCrouchMovementSpeed,
	}
}

// Deps are the collaborators of a character; nil tracer and body fall back to inert versions
type Deps struct {
	World    *item.World
	Audio    combat.Audio
	Animator combat.Animator
	Effects  combat.Effects
	Tracer   Tracer
	Body     Body
	Status   *status.Registry
}

// Character owns the combat machine and the item acquirer and drives both per frame
type Character struct {
	world    *item.World
	timers   *engine.Timers
	tracer   Tracer
	body     Body
	settings Settings

	combat    *combat.Machine
	acquirer  *pickup.Acquirer
	gate      *pickup.SoundGate
	crosshair combat.Crosshair

	camera vmath.Transform
	fov    float64

	turnRate   float64
	lookUpRate float64

	crouching      bool
	halfHeight     float64
	maxWalkSpeed   float64
	groundFriction float64

	overlappedItems  int
	shouldTrace      bool
	tracedItem       item.ID
	tracedLastFrame  item.ID
	highlightCleared int

	statSpread  *status.AtomicFloat
	statPickups *atomic.Int64
}

func New(deps Deps, settings Settings) *Character {
	if deps.Tracer == nil {
		deps.Tracer = nopTracer{}
	}
	if deps.Body == nil {
		deps.Body = staticBody{}
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	timers := deps.World.Timers()

	c := &Character{
		world:       deps.World,
		timers:      timers,
		tracer:      deps.Tracer,
		body:        deps.Body,
		settings:    settings,
		fov:         settings.DefaultFOV,
		turnRate:    settings.HipTurnRate,
		lookUpRate:  settings.HipLookUpRate,
		halfHeight:  parameter.CharacterStandingHalfHeight,
		statSpread:  deps.Status.Floats.Get("character.spread"),
		statPickups: deps.Status.Ints.Get("character.pickups"),
	}

	c.combat = combat.New(combat.Deps{
		Timers:   timers,
		Audio:    deps.Audio,
		Animator: deps.Animator,
		Effects:  deps.Effects,
		Slides:   deps.World,
		Status:   deps.Status,
	}, settings.Combat, combat.NewAmmoReserve(settings.StartingAmmo))

	c.gate = pickup.NewSoundGate(timers, deps.Audio, settings.SoundReset)
	c.acquirer = pickup.NewAcquirer(deps.World, c, c.gate, pickup.NewSlots(settings.SlotOffsets), settings.Pickup, deps.Status)

	c.applyMovement()
	return c
}

// Spawn equips the starting weapon; nil spawns unarmed
func (c *Character) Spawn(weapon *item.Item) {
	if weapon == nil {
		return
	}
	c.EquipWeapon(weapon)
}

// Advance runs one frame: camera, look rates, crosshair, item trace, acquisitions
// Timers must already have advanced for this frame
func (c *Character) Advance(dt time.Duration) {
	step := dt.Seconds()

	c.updateFOV(step)
	c.updateLookRates()
	c.updateCrosshair(step)
	c.TraceForItems()
	c.updateHalfHeight(step)
	c.applyMovement()
	c.followCamera()
	c.acquirer.Advance(dt)
}

func (c *Character) Combat() *combat.Machine { return c.combat }

func (c *Character) Acquirer() *pickup.Acquirer { return c.acquirer }

func (c *Character) SoundGate() *pickup.SoundGate { return c.gate }

func (c *Character) EquippedWeapon() *item.Item { return c.combat.Weapon() }

func (c *Character) Reserve() *combat.AmmoReserve { return c.combat.Reserve() }

func (c *Character) CrosshairSpread() float64 { return c.crosshair.Spread() }

func (c *Character) Crouching() bool { return c.crouching }

func (c *Character) MaxWalkSpeed() float64 { return c.maxWalkSpeed }

func (c *Character) CapsuleHalfHeight() float64 { return c.halfHeight }

func (c *Character) updateCrosshair(step float64) {
	spread := c.crosshair.Update(step, c.body.Velocity(), c.body.IsFalling(), c.combat.Aiming(), c.combat.FiringBullet())
	c.statSpread.Store(spread)
}

// applyMovement pushes speed and friction for the current stance to the body when they change
func (c *Character) applyMovement() {
	speed, friction := c.settings.BaseSpeed, parameter.CharacterBaseGroundFriction
	if c.crouching {
		speed, friction = c.settings.CrouchSpeed, parameter.CharacterCrouchGroundFriction
	} else if c.combat.Aiming() {
		speed = c.settings.CrouchSpeed
	}
	if speed != c.maxWalkSpeed {
		c.maxWalkSpeed = speed
		c.body.SetMaxWalkSpeed(speed)
	}
	if friction != c.groundFriction {
		c.groundFriction = friction
		c.body.SetGroundFriction(friction)
	}
}

func (c *Character) updateHalfHeight(step float64) {
	target := parameter.CharacterStandingHalfHeight
	if c.crouching {
		target = parameter.CharacterCrouchingHalfHeight
	}
	c.halfHeight = vmath.FInterpTo(c.halfHeight, target, step, parameter.CharacterHalfHeightInterp)
}

// followCamera keeps the held weapon at the camera with the camera's yaw
func (c *Character) followCamera() {
	w := c.combat.Weapon()
	if w == nil {
		return
	}
	w.Transform = vmath.Transform{
		Location: c.camera.Location,
		Rotation: vmath.Rotator{Yaw: c.camera.Rotation.Yaw},
	}
}

package item

import (
	"log"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/status"
	"github.com/lixenwraith/gunplay/vmath"
)

// Tuning holds item presentation and drop parameters
type Tuning struct {
	ThrowTime      time.Duration
	ThrowImpulse   float64
	ThrowTilt      float64
	ThrowSpreadMin float64
	ThrowSpreadMax float64

	PulsePeriod      time.Duration
	PulseCurve       vmath.VecCurve
	InterpPulseCurve vmath.VecCurve

	GlowAmount             float64
	FresnelExponent        float64
	FresnelReflectFraction float64

	SlideTime  time.Duration
	SlideCurve *vmath.Curve
	MaxSlide   float64
	MaxRecoil  float64
	HandSocket string
}

// DefaultTuning returns the stock curves and constants
func DefaultTuning() Tuning {
	return Tuning{
		ThrowTime:      parameter.PickupThrowTime,
		ThrowImpulse:   parameter.PickupThrowImpulse,
		ThrowTilt:      parameter.PickupThrowTilt,
		ThrowSpreadMin: parameter.PickupThrowSpreadMin,
		ThrowSpreadMax: parameter.PickupThrowSpreadMax,

		PulsePeriod: parameter.PickupPulseCurveTime,
		PulseCurve: vmath.VecCurve{
			X: vmath.NewCurve(vmath.CurveKey{T: 0, V: 1}, vmath.CurveKey{T: 2.5, V: 1.6}, vmath.CurveKey{T: 5, V: 1}),
			Y: vmath.NewCurve(vmath.CurveKey{T: 0, V: 1}, vmath.CurveKey{T: 2.5, V: 0.6}, vmath.CurveKey{T: 5, V: 1}),
			Z: vmath.NewCurve(vmath.CurveKey{T: 0, V: 1}, vmath.CurveKey{T: 2.5, V: 1.3}, vmath.CurveKey{T: 5, V: 1}),
		},
		InterpPulseCurve: vmath.VecCurve{
			X: vmath.NewCurve(vmath.CurveKey{T: 0, V: 1}, vmath.CurveKey{T: 0.35, V: 3}, vmath.CurveKey{T: 0.7, V: 1}),
			Y: vmath.NewCurve(vmath.CurveKey{T: 0, V: 1}, vmath.CurveKey{T: 0.7, V: 0.5}),
			Z: vmath.ConstantCurve(1),
		},

		GlowAmount:             parameter.PickupGlowAmount,
		FresnelExponent:        parameter.PickupFresnelExponent,
		FresnelReflectFraction: parameter.PickupFresnelReflectFraction,

		SlideTime:  parameter.CombatSlideDisplacementTime,
		SlideCurve: vmath.NewCurve(vmath.CurveKey{T: 0, V: 0}, vmath.CurveKey{T: 0.05, V: 1}, vmath.CurveKey{T: 0.2, V: 0}),
		MaxSlide:   parameter.CombatMaxSlideDisplacement,
		MaxRecoil:  parameter.CombatMaxRecoilRotation,
		HandSocket: "RightHandSocket",
	}
}

// Deps are the collaborators a World needs; nil lookups mean no data tables
type Deps struct {
	Timers    *engine.Timers
	Presenter Presenter
	Rand      *vmath.FastRand
	Weapons   WeaponLookup
	Rarities  RarityLookup
	Status    *status.Registry
}

// World is the arena that owns every item and its timers
// Handles stay valid until Destroy; lookups of destroyed handles fail instead of dangling
type World struct {
	items  map[ID]*Item
	nextID ID

	timers    *engine.Timers
	presenter Presenter
	rng       *vmath.FastRand
	weapons   WeaponLookup
	rarities  RarityLookup
	tuning    Tuning

	statSpawned   *atomic.Int64
	statDestroyed *atomic.Int64
	statThrown    *atomic.Int64
}

func NewWorld(deps Deps, tuning Tuning) *World {
	if deps.Timers == nil {
		deps.Timers = engine.NewTimers()
	}
	if deps.Presenter == nil {
		deps.Presenter = NopPresenter{}
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	return &World{
		items:         make(map[ID]*Item),
		timers:        deps.Timers,
		presenter:     deps.Presenter,
		rng:           deps.Rand,
		weapons:       deps.Weapons,
		rarities:      deps.Rarities,
		tuning:        tuning,
		statSpawned:   deps.Status.Ints.Get("item.spawned"),
		statDestroyed: deps.Status.Ints.Get("item.destroyed"),
		statThrown:    deps.Status.Ints.Get("item.thrown"),
	}
}

func (w *World) Timers() *engine.Timers { return w.timers }

func (w *World) Presenter() Presenter { return w.presenter }

func (w *World) Tuning() Tuning { return w.tuning }

// SpawnWeapon creates a weapon resting in Pickup, filled from the weapon table
func (w *World) SpawnWeapon(name string, wt WeaponType, rarity Rarity, at vmath.Transform) *Item {
	it := &Item{
		Name:      name,
		Kind:      KindWeapon,
		Rarity:    rarity,
		Transform: at,
		Weapon:    defaultWeapon(wt),
	}
	if w.weapons == nil {
		log.Printf("item: no weapon table, %s keeps default definition", wt)
	} else if def, ok := w.weapons.Weapon(wt); ok {
		it.applyDef(def)
	} else {
		log.Printf("item: no weapon row for %s, keeping defaults", wt)
	}
	w.spawn(it)
	return it
}

// SpawnAmmo creates an ammo stack resting in Pickup with the stock ammo sounds
func (w *World) SpawnAmmo(name string, at AmmoType, count int, rarity Rarity, where vmath.Transform) *Item {
	if count < 0 {
		count = 0
	}
	it := &Item{
		Name:      name,
		Kind:      KindAmmo,
		Rarity:    rarity,
		Transform: where,
		Count:     count,
		Ammo:      &Ammo{Type: at},

		PickupSound: core.SoundPickupAmmo,
		EquipSound:  core.SoundEquipAmmo,
	}
	w.spawn(it)
	return it
}

// spawn registers and initializes an item, the equivalent of construction plus begin play
func (w *World) spawn(it *Item) {
	w.nextID++
	it.ID = w.nextID
	it.CanChangeCustomDepth = true
	it.setActiveStars()
	w.applyRarity(it)
	w.items[it.ID] = it
	w.statSpawned.Add(1)

	w.presenter.SetPickupWidgetVisible(it.ID, false)
	w.SetState(it, StatePickup)
	w.DisableCustomDepth(it)
	w.EnableGlow(it)
	w.StartPulse(it)
}

func (w *World) applyRarity(it *Item) {
	if w.rarities == nil {
		return
	}
	def, ok := w.rarities.Rarity(it.Rarity)
	if !ok {
		log.Printf("item: no rarity row for %s", it.Rarity)
		return
	}
	it.Style = def
	it.Glow.Color = def.GlowColor
}

// Get resolves a handle
func (w *World) Get(id ID) (*Item, bool) {
	it, ok := w.items[id]
	return it, ok
}

// Destroy removes the item and cancels its timers
func (w *World) Destroy(id ID) bool {
	it, ok := w.items[id]
	if !ok {
		return false
	}
	w.timers.Cancel(it.pulseTimer)
	w.timers.Cancel(it.throwTimer)
	if it.Weapon != nil {
		w.timers.Cancel(it.Weapon.Slide.timer)
	}
	w.presenter.SetPickupWidgetVisible(id, false)
	w.presenter.SetVisible(id, false)
	delete(w.items, id)
	w.statDestroyed.Add(1)
	return true
}

func (w *World) Len() int {
	return len(w.items)
}

// Each visits items in ID order
func (w *World) Each(fn func(*Item)) {
	ids := make([]ID, 0, len(w.items))
	for id := range w.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if it, ok := w.items[id]; ok {
			fn(it)
		}
	}
}

// SetState moves the item to s and applies the presentation bundle for s
func (w *World) SetState(it *Item, s State) {
	it.State = s
	p, ok := statePresentation[s]
	if !ok {
		return
	}
	w.presenter.SetVisible(it.ID, p.visible)
	w.presenter.SetSimulatePhysics(it.ID, p.physics)
	w.presenter.SetCollision(it.ID, p.collision)
	if p.hideWidget {
		w.presenter.SetPickupWidgetVisible(it.ID, false)
	}
}

// EnableCustomDepth turns the outline on unless the item is locked in flight
func (w *World) EnableCustomDepth(it *Item) {
	if !it.CanChangeCustomDepth {
		return
	}
	it.CustomDepth = true
	w.presenter.SetCustomDepth(it.ID, true, it.Style.CustomDepthStencil)
}

func (w *World) DisableCustomDepth(it *Item) {
	if !it.CanChangeCustomDepth {
		return
	}
	it.CustomDepth = false
	w.presenter.SetCustomDepth(it.ID, false, it.Style.CustomDepthStencil)
}

// ForceDisableCustomDepth clears the outline regardless of the lock
func (w *World) ForceDisableCustomDepth(it *Item) {
	it.CustomDepth = false
	w.presenter.SetCustomDepth(it.ID, false, it.Style.CustomDepthStencil)
}

func (w *World) EnableGlow(it *Item) {
	it.Glow.Enabled = true
	it.Glow.Amount = w.tuning.GlowAmount
	it.Glow.FresnelExponent = w.tuning.FresnelExponent
	it.Glow.FresnelReflectFraction = w.tuning.FresnelReflectFraction
	w.presenter.SetGlow(it.ID, it.Glow)
}

func (w *World) DisableGlow(it *Item) {
	it.Glow.Enabled = false
	w.presenter.SetGlow(it.ID, it.Glow)
}

// SetWidgetVisible shows or hides the pickup widget, used by crosshair tracing
func (w *World) SetWidgetVisible(it *Item, visible bool) {
	w.presenter.SetPickupWidgetVisible(it.ID, visible)
}

// Attach parents the item to the hand socket
func (w *World) Attach(it *Item) {
	w.presenter.AttachTo(it.ID, w.tuning.HandSocket)
}

// Tick advances per-frame visuals: glow pulse and pistol slide
func (w *World) Tick(dt time.Duration) {
	for _, it := range w.items {
		w.updatePulse(it)
		if it.Weapon != nil && it.Weapon.Slide.Moving {
			w.updateSlide(it)
		}
	}
}

package pickup

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/status"
	"github.com/lixenwraith/gunplay/vmath"
)

// Host is the character receiving acquired items
type Host interface {
	CameraTransform() vmath.Transform
	ResolvePickup(it *item.Item)
	ClearInventoryHighlight()
}

// Settings shape the flight of an acquired item
type Settings struct {
	Duration    time.Duration
	ZCurve      *vmath.Curve
	InterpSpeed float64
}

// DefaultSettings returns the stock flight: 0.7 s along the default Z curve
func DefaultSettings() Settings {
	return Settings{
		Duration: parameter.PickupZCurveTime,
		ZCurve: vmath.NewCurve(
			vmath.CurveKey{T: 0, V: 0},
			vmath.CurveKey{T: 0.35, V: 1.3},
			vmath.CurveKey{T: 0.7, V: 1},
		),
		InterpSpeed: parameter.PickupInterpSpeed,
	}
}

// Session is the in-flight record of one acquisition
type Session struct {
	Item      item.ID
	Start     vmath.Vec3F
	Timer     engine.TimerHandle
	Slot      int
	YawOffset float64
}

// Acquirer flies items from the world to a character and hands them over on arrival
// At most one session exists per item
type Acquirer struct {
	world    *item.World
	timers   *engine.Timers
	host     Host
	gate     *SoundGate
	slots    *Slots
	settings Settings

	sessions map[item.ID]*Session

	statBegun     *atomic.Int64
	statCompleted *atomic.Int64
	statAborted   *atomic.Int64
}

func NewAcquirer(world *item.World, host Host, gate *SoundGate, slots *Slots, settings Settings, reg *status.Registry) *Acquirer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if settings.Duration <= 0 {
		settings.Duration = settings.ZCurve.Duration()
	}
	return &Acquirer{
		world:         world,
		timers:        world.Timers(),
		host:          host,
		gate:          gate,
		slots:         slots,
		settings:      settings,
		sessions:      make(map[item.ID]*Session),
		statBegun:     reg.Ints.Get("pickup.begun"),
		statCompleted: reg.Ints.Get("pickup.completed"),
		statAborted:   reg.Ints.Get("pickup.aborted"),
	}
}

// SetHost binds the receiving character
func (a *Acquirer) SetHost(h Host) {
	a.host = h
}

// DetachHost unbinds the character; in-flight items still land but are not resolved
func (a *Acquirer) DetachHost() {
	a.host = nil
}

func (a *Acquirer) Slots() *Slots { return a.slots }

func (a *Acquirer) Active() int { return len(a.sessions) }

// Session returns a copy of the item's in-flight record
func (a *Acquirer) Session(id item.ID) (Session, bool) {
	s, ok := a.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Begin starts flying the item to the host; false when the item is not in Pickup,
// there is no host, or the item is already in flight
func (a *Acquirer) Begin(id item.ID, forceSound bool) bool {
	it, ok := a.world.Get(id)
	if !ok || it.State != item.StatePickup {
		return false
	}
	if a.host == nil {
		log.Printf("pickup: begin on item %d without a character", id)
		return false
	}
	if _, busy := a.sessions[id]; busy {
		return false
	}

	slot := a.slots.Lowest()
	a.slots.Increment(slot, 1)
	a.gate.PlayPickup(it.PickupSound, forceSound)

	cam := a.host.CameraTransform()
	s := &Session{
		Item:      id,
		Start:     it.Transform.Location,
		Slot:      slot,
		YawOffset: it.Transform.Rotation.Yaw - cam.Rotation.Yaw,
	}

	a.world.SetState(it, item.StateEquipInterping)
	a.world.StopPulse(it)

	a.timers.Cancel(it.InterpTimer)
	s.Timer = a.timers.Schedule(a.settings.Duration, func() { a.finish(id) })
	it.InterpTimer = s.Timer
	it.CanChangeCustomDepth = false

	a.sessions[id] = s
	a.statBegun.Add(1)
	return true
}

// Advance moves every in-flight item one frame toward its anchor
func (a *Acquirer) Advance(dt time.Duration) {
	if len(a.sessions) == 0 || a.host == nil {
		return
	}
	cam := a.host.CameraTransform()
	step := dt.Seconds()

	for id, s := range a.sessions {
		it, ok := a.world.Get(id)
		if !ok {
			a.drop(s)
			continue
		}

		elapsed, ok := a.timers.ElapsedSince(s.Timer)
		if !ok {
			continue
		}
		c := a.settings.ZCurve.Sample(elapsed.Seconds())

		target, ok := a.slots.Location(a.targetSlot(it, s), cam)
		if !ok {
			continue
		}

		deltaZ := target.Z - s.Start.Z
		if deltaZ < 0 {
			deltaZ = -deltaZ
		}
		cur := it.Transform.Location
		it.Transform.Location = vmath.Vec3F{
			X: vmath.FInterpTo(cur.X, target.X, step, a.settings.InterpSpeed),
			Y: vmath.FInterpTo(cur.Y, target.Y, step, a.settings.InterpSpeed),
			Z: s.Start.Z + c*deltaZ,
		}
		it.Transform.Rotation = vmath.Rotator{Yaw: cam.Rotation.Yaw + s.YawOffset}
	}
}

// targetSlot sends weapons to the weapon anchor and everything else to its session slot
func (a *Acquirer) targetSlot(it *item.Item, s *Session) int {
	if it.Kind == item.KindWeapon {
		return parameter.PickupWeaponSlot
	}
	return s.Slot
}

// finish runs when the flight timer elapses
func (a *Acquirer) finish(id item.ID) {
	s, ok := a.sessions[id]
	if !ok {
		return
	}
	delete(a.sessions, id)
	a.slots.Increment(s.Slot, -1)

	it, ok := a.world.Get(id)
	if !ok {
		return
	}
	it.InterpTimer = 0
	a.world.SetState(it, item.StatePickedUp)
	it.CanChangeCustomDepth = true
	a.world.DisableGlow(it)
	a.world.DisableCustomDepth(it)
	a.statCompleted.Add(1)

	if a.host == nil {
		log.Printf("pickup: item %d landed without a character", id)
		return
	}
	a.host.ResolvePickup(it)
	a.host.ClearInventoryHighlight()
}

// Abort cancels an in-flight acquisition and leaves the item where it is, back in Pickup
func (a *Acquirer) Abort(id item.ID) bool {
	s, ok := a.sessions[id]
	if !ok {
		return false
	}
	a.drop(s)

	if it, ok := a.world.Get(id); ok {
		it.InterpTimer = 0
		it.CanChangeCustomDepth = true
		a.world.SetState(it, item.StatePickup)
		a.world.StartPulse(it)
	}
	a.statAborted.Add(1)
	return true
}

// drop forgets a session and releases its slot
func (a *Acquirer) drop(s *Session) {
	a.timers.Cancel(s.Timer)
	a.slots.Increment(s.Slot, -1)
	delete(a.sessions, s.Item)
}

package pickup

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/status"
	"github.com/lixenwraith/gunplay/vmath"
)

type fakeAudio struct {
	played []core.SoundType
	forced int
}

func (f *fakeAudio) PlaySound(s core.SoundType, force bool) {
	f.played = append(f.played, s)
	if force {
		f.forced++
	}
}

type fakeHost struct {
	camera   vmath.Transform
	resolved []item.ID
	cleared  int
}

func (h *fakeHost) CameraTransform() vmath.Transform { return h.camera }

func (h *fakeHost) ResolvePickup(it *item.Item) { h.resolved = append(h.resolved, it.ID) }

func (h *fakeHost) ClearInventoryHighlight() { h.cleared++ }

type rig struct {
	timers    *engine.Timers
	world     *item.World
	presenter *item.RecordingPresenter
	audio     *fakeAudio
	host      *fakeHost
	acq       *Acquirer
	reg       *status.Registry
}

func newRig() *rig {
	r := &rig{
		timers:    engine.NewTimers(),
		presenter: item.NewRecordingPresenter(),
		audio:     &fakeAudio{},
		host:      &fakeHost{camera: vmath.Transform{Location: vmath.Vec3F{Z: 100}, Rotation: vmath.Rotator{Yaw: 30}}},
		reg:       status.NewRegistry(),
	}
	r.world = item.NewWorld(item.Deps{
		Timers:    r.timers,
		Presenter: r.presenter,
		Rand:      vmath.NewFastRand(1),
	}, item.DefaultTuning())
	gate := NewSoundGate(r.timers, r.audio, 200*time.Millisecond)
	r.acq = NewAcquirer(r.world, r.host, gate, NewSlots(DefaultSlotOffsets()), DefaultSettings(), r.reg)
	return r
}

func (r *rig) spawnAmmo(at vmath.Vec3F, yaw float64) *item.Item {
	it := r.world.SpawnAmmo("9mm", item.Ammo9mm, 30, item.RarityCommon, vmath.Transform{Location: at, Rotation: vmath.Rotator{Yaw: yaw}})
	it.PickupSound = core.SoundPickupAmmo
	return it
}

// frame advances timers then sessions, as the host loop does
func (r *rig) frame(dt time.Duration) {
	r.timers.Advance(dt)
	r.acq.Advance(dt)
}

func TestBeginStartsSession(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{X: 500}, 75)

	if !r.acq.Begin(it.ID, false) {
		t.Fatal("Expected acquisition to begin")
	}

	s, ok := r.acq.Session(it.ID)
	if !ok {
		t.Fatal("Expected session recorded")
	}
	if s.Slot != 1 || r.acq.Slots().Count(1) != 1 {
		t.Errorf("Expected slot 1 occupied, got slot %d count %d", s.Slot, r.acq.Slots().Count(1))
	}
	if s.YawOffset != 45 {
		t.Errorf("Expected yaw offset 45, got %f", s.YawOffset)
	}
	if it.State != item.StateEquipInterping {
		t.Errorf("Expected EquipInterping, got %s", it.State)
	}
	if it.CanChangeCustomDepth {
		t.Error("Expected custom depth locked during flight")
	}
	if it.InterpTimer != s.Timer {
		t.Error("Expected item to carry the interp timer")
	}
	if len(r.audio.played) != 1 || r.audio.played[0] != core.SoundPickupAmmo {
		t.Errorf("Expected one pickup sound, got %v", r.audio.played)
	}
	if r.presenter.Widget[it.ID] {
		t.Error("Expected widget hidden while interping")
	}
}

func TestBeginRejected(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{}, 0)

	r.acq.Begin(it.ID, false)
	if r.acq.Begin(it.ID, false) {
		t.Error("Expected second Begin on the same item to be rejected")
	}
	if r.acq.Active() != 1 || r.acq.Slots().Count(1) != 1 {
		t.Error("Expected a single session and a single slot increment")
	}

	other := r.spawnAmmo(vmath.Vec3F{}, 0)
	r.world.SetState(other, item.StateFalling)
	if r.acq.Begin(other.ID, false) {
		t.Error("Expected Begin on a falling item to be rejected")
	}

	r.acq.DetachHost()
	third := r.spawnAmmo(vmath.Vec3F{}, 0)
	if r.acq.Begin(third.ID, false) {
		t.Error("Expected Begin without host to be rejected")
	}
	if r.acq.Begin(item.ID(999), false) {
		t.Error("Expected Begin on unknown item to be rejected")
	}
}

func TestSlotsSpreadAcrossItems(t *testing.T) {
	r := newRig()
	var slots []int
	for i := 0; i < 7; i++ {
		it := r.spawnAmmo(vmath.Vec3F{}, 0)
		r.acq.Begin(it.ID, false)
		s, _ := r.acq.Session(it.ID)
		slots = append(slots, s.Slot)
	}

	want := []int{1, 2, 3, 4, 5, 1, 2}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("Item %d: expected slot %d, got %d", i, want[i], slots[i])
		}
	}
	if r.acq.Slots().Count(0) != 0 {
		t.Error("Expected weapon slot never chosen by occupancy")
	}
}

func TestAdvanceFollowsCurve(t *testing.T) {
	r := newRig()
	start := vmath.Vec3F{X: 1000, Y: -400, Z: 0}
	it := r.spawnAmmo(start, 75)
	r.acq.Begin(it.ID, false)
	s, _ := r.acq.Session(it.ID)

	target, _ := r.acq.Slots().Location(s.Slot, r.host.camera)
	prevDist := vmath.V3FMag2D(vmath.V3FSub(target, start))

	for i := 0; i < 21; i++ {
		r.frame(16 * time.Millisecond)
	}
	elapsed, ok := r.timers.ElapsedSince(s.Timer)
	if !ok {
		t.Fatal("Expected flight still in progress")
	}
	c := DefaultSettings().ZCurve.Sample(elapsed.Seconds())
	wantZ := start.Z + c*math.Abs(target.Z-start.Z)
	if math.Abs(it.Transform.Location.Z-wantZ) > 1e-9 {
		t.Errorf("Expected Z %f, got %f", wantZ, it.Transform.Location.Z)
	}

	dist := vmath.V3FMag2D(vmath.V3FSub(target, it.Transform.Location))
	if dist >= prevDist {
		t.Errorf("Expected item to approach anchor in XY, %f >= %f", dist, prevDist)
	}
	if it.Transform.Rotation.Yaw != 75 {
		t.Errorf("Expected yaw camera+offset 75, got %f", it.Transform.Rotation.Yaw)
	}

	// Camera turns, item keeps its relative yaw
	r.host.camera.Rotation.Yaw = 90
	r.frame(time.Millisecond)
	if it.Transform.Rotation.Yaw != 135 {
		t.Errorf("Expected yaw 135 after camera turn, got %f", it.Transform.Rotation.Yaw)
	}
}

func TestWeaponTargetsWeaponSlot(t *testing.T) {
	r := newRig()
	w := r.world.SpawnWeapon("SMG", item.WeaponSubmachineGun, item.RarityCommon, vmath.Transform{Location: vmath.Vec3F{X: 300}})
	r.acq.Begin(w.ID, false)
	s, _ := r.acq.Session(w.ID)
	if s.Slot == 0 {
		t.Fatal("Expected occupancy counted on a generic slot")
	}

	for i := 0; i < 40; i++ {
		r.frame(10 * time.Millisecond)
	}
	anchor, _ := r.acq.Slots().Location(0, r.host.camera)
	if math.Abs(w.Transform.Location.X-anchor.X) > 1 || math.Abs(w.Transform.Location.Y-anchor.Y) > 1 {
		t.Errorf("Expected weapon near slot 0 anchor %+v, got %+v", anchor, w.Transform.Location)
	}
}

func TestCompletionHandsOver(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{X: 200}, 0)
	r.acq.Begin(it.ID, false)

	r.frame(699 * time.Millisecond)
	if len(r.host.resolved) != 0 {
		t.Fatal("Expected no hand-over before flight time")
	}
	r.frame(time.Millisecond)

	if len(r.host.resolved) != 1 || r.host.resolved[0] != it.ID {
		t.Fatalf("Expected item resolved once, got %v", r.host.resolved)
	}
	if r.host.cleared != 1 {
		t.Error("Expected inventory highlight cleared")
	}
	if it.State != item.StatePickedUp {
		t.Errorf("Expected PickedUp, got %s", it.State)
	}
	if !it.CanChangeCustomDepth || it.Glow.Enabled || it.CustomDepth {
		t.Error("Expected outline unlocked and glow plus outline off")
	}
	if r.acq.Slots().Count(1) != 0 || r.acq.Active() != 0 {
		t.Error("Expected slot and session released")
	}
	if got := r.reg.Ints.Get("pickup.completed").Load(); got != 1 {
		t.Errorf("Expected completed metric 1, got %d", got)
	}
}

func TestCompletionWithoutHost(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{}, 0)
	r.acq.Begin(it.ID, false)
	r.acq.DetachHost()

	r.frame(time.Second)

	if len(r.host.resolved) != 0 {
		t.Error("Expected no resolution without host")
	}
	if r.acq.Slots().Count(1) != 0 {
		t.Error("Expected slot released without host")
	}
	if it.State != item.StatePickedUp {
		t.Errorf("Expected PickedUp, got %s", it.State)
	}
}

func TestAbort(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{}, 0)
	r.acq.Begin(it.ID, false)
	r.frame(100 * time.Millisecond)

	if !r.acq.Abort(it.ID) {
		t.Fatal("Expected abort to succeed")
	}
	if r.acq.Abort(it.ID) {
		t.Error("Expected second abort to fail")
	}
	if it.State != item.StatePickup || !it.CanChangeCustomDepth {
		t.Errorf("Expected item back in Pickup, got %s", it.State)
	}
	if r.acq.Slots().Count(1) != 0 {
		t.Error("Expected slot released")
	}

	r.frame(time.Second)
	if len(r.host.resolved) != 0 {
		t.Error("Expected aborted item never resolved")
	}
	if !r.acq.Begin(it.ID, false) {
		t.Error("Expected aborted item to be acquirable again")
	}
}

func TestDestroyedMidFlight(t *testing.T) {
	r := newRig()
	it := r.spawnAmmo(vmath.Vec3F{}, 0)
	r.acq.Begin(it.ID, false)
	r.world.Destroy(it.ID)

	r.frame(16 * time.Millisecond)
	if r.acq.Active() != 0 || r.acq.Slots().Count(1) != 0 {
		t.Error("Expected session dropped for destroyed item")
	}
	r.frame(time.Second)
	if len(r.host.resolved) != 0 {
		t.Error("Expected destroyed item never resolved")
	}
}

func TestSoundGate(t *testing.T) {
	timers := engine.NewTimers()
	audio := &fakeAudio{}
	g := NewSoundGate(timers, audio, 200*time.Millisecond)

	if !g.PlayPickup(core.SoundPickupAmmo, false) {
		t.Error("Expected first sound to play")
	}
	if g.PlayPickup(core.SoundPickupAmmo, false) {
		t.Error("Expected second sound within cooldown to be dropped")
	}
	if !g.PlayEquip(core.SoundEquipAmmo, false) {
		t.Error("Expected equip cooldown independent of pickup")
	}

	if !g.PlayPickup(core.SoundPickupAmmo, true) {
		t.Error("Expected forced sound to play during cooldown")
	}
	if g.PickupReady() {
		t.Error("Expected forced play not to reset cooldown")
	}

	timers.Advance(200 * time.Millisecond)
	if !g.PickupReady() || !g.EquipReady() {
		t.Error("Expected cooldowns cleared after reset time")
	}
	if !g.PlayPickup(core.SoundPickupAmmo, false) {
		t.Error("Expected sound after cooldown")
	}

	if len(audio.played) != 4 || audio.forced != 1 {
		t.Errorf("Expected 4 plays with 1 forced, got %d plays %d forced", len(audio.played), audio.forced)
	}

	if g.PlayEquip(core.SoundNone, true) {
		t.Error("Expected SoundNone never to play")
	}
}

func TestSoundGateMissingSoundArmsCooldown(t *testing.T) {
	timers := engine.NewTimers()
	audio := &fakeAudio{}
	g := NewSoundGate(timers, audio, 200*time.Millisecond)

	if g.PlayEquip(core.SoundNone, false) {
		t.Error("Expected SoundNone not to play")
	}
	if g.EquipReady() {
		t.Error("Expected cooldown armed by an item without a sound")
	}
	if g.PlayEquip(core.SoundEquipAmmo, false) {
		t.Error("Expected sound inside the cooldown dropped")
	}

	timers.Advance(200 * time.Millisecond)
	if !g.PlayEquip(core.SoundEquipAmmo, false) {
		t.Error("Expected sound after the cooldown")
	}
	if len(audio.played) != 1 {
		t.Errorf("Expected 1 play, got %d", len(audio.played))
	}
}

func TestSlotsIncrementBounds(t *testing.T) {
	s := NewSlots(DefaultSlotOffsets())

	if s.Increment(1, 2) || s.Increment(-1, 1) || s.Increment(s.Len(), 1) {
		t.Error("Expected invalid increments rejected")
	}
	if s.Increment(1, -1) {
		t.Error("Expected decrement below zero rejected")
	}
	s.Increment(1, 1)
	s.Increment(2, 1)
	if got := s.Lowest(); got != 3 {
		t.Errorf("Expected lowest slot 3, got %d", got)
	}

	single := NewSlots([]vmath.Vec3F{{X: 1}})
	if single.Lowest() != 0 {
		t.Error("Expected weapon slot fallback with no generic slots")
	}
}

package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunplay/combat"
	"github.com/lixenwraith/gunplay/config"
	"github.com/lixenwraith/gunplay/data"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/vmath"
)

const testStep = 10 * time.Millisecond

func newTestSandbox(t *testing.T) *sandbox {
	t.Helper()
	weapons := data.MustDefaultWeaponTable()
	tables := Tables{
		Weapons:  weapons,
		Rarities: data.MustDefaultRarityTable(),
		Types:    weapons.Types(),
	}
	return newSandbox(config.Default(), tables, nil, nil, 42)
}

// run steps timers and the frame the way engine.Loop does
func (sb *sandbox) run(total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += testStep {
		sb.timers.Advance(testStep)
		sb.frame(testStep)
	}
}

func (sb *sandbox) spawnAhead(dx float64) *item.Item {
	at := vmath.Transform{Location: vmath.V3FAdd(sb.body.location, vmath.Vec3F{X: dx})}
	return sb.world.SpawnAmmo("9mm ammo", item.Ammo9mm, 20, item.RarityCommon, at)
}

func TestOverlapAndTrace(t *testing.T) {
	sb := newTestSandbox(t)
	ammo := sb.spawnAhead(100)

	sb.run(2 * testStep)

	if got := sb.char.OverlappedItemCount(); got != 1 {
		t.Fatalf("Expected 1 overlapped item, got %d", got)
	}
	if got := sb.char.TracedItem(); got != ammo.ID {
		t.Errorf("Expected traced item %d, got %d", ammo.ID, got)
	}
	if !sb.arena.items[ammo.ID].widget {
		t.Error("Expected pickup widget visible on traced item")
	}
	if !sb.arena.items[ammo.ID].outline {
		t.Error("Expected outline on traced item")
	}

	sb.body.location.X -= 1000
	sb.run(2 * testStep)
	if got := sb.char.OverlappedItemCount(); got != 0 {
		t.Errorf("Expected 0 overlapped items after walking away, got %d", got)
	}
	if sb.arena.items[ammo.ID].widget {
		t.Error("Expected widget hidden once tracing stops")
	}
}

func TestTakeAmmoThroughArena(t *testing.T) {
	sb := newTestSandbox(t)
	ammo := sb.spawnAhead(100)
	before := sb.char.Reserve().Count(item.Ammo9mm)

	sb.run(2 * testStep)
	if !sb.char.TakeActionButtonPressed() {
		t.Fatal("Expected take action to start an acquisition")
	}
	if sb.arena.items[ammo.ID].collision != item.CollisionNone {
		t.Errorf("Expected no collision while flying, got %v", sb.arena.items[ammo.ID].collision)
	}

	sb.run(2 * time.Second)

	if _, ok := sb.world.Get(ammo.ID); ok {
		t.Error("Expected ammo destroyed after pickup")
	}
	if got := sb.char.Reserve().Count(item.Ammo9mm); got != before+20 {
		t.Errorf("Expected reserve %d, got %d", before+20, got)
	}
	if got := sb.char.OverlappedItemCount(); got != 0 {
		t.Errorf("Expected overlap released with the destroyed item, got %d", got)
	}
}

func TestTracerPicksNearestAhead(t *testing.T) {
	sb := newTestSandbox(t)
	far := sb.spawnAhead(600)
	near := sb.spawnAhead(300)
	sb.spawnAhead(-200)
	side := sb.world.SpawnAmmo("side", item.AmmoAR, 5, item.RarityCommon,
		vmath.Transform{Location: vmath.V3FAdd(sb.body.location, vmath.Vec3F{X: 150, Y: 400})})

	tr := &tracer{arena: sb.arena, camera: sb.char.CameraTransform}
	id, ok := tr.ItemUnderCrosshair()
	if !ok || id != near.ID {
		t.Errorf("Expected nearest item %d, got %d (hit %v)", near.ID, id, ok)
	}

	sb.world.SetState(near, item.StateEquipInterping)
	if id, _ := tr.ItemUnderCrosshair(); id != far.ID {
		t.Errorf("Expected %d once the near item stops colliding, got %d", far.ID, id)
	}
	if id, _ := tr.ItemUnderCrosshair(); id == side.ID {
		t.Error("Expected item off the crosshair line to be ignored")
	}
}

func TestBodyMovementAndJump(t *testing.T) {
	b := newBody(vmath.Vec3F{X: 1000, Y: 1000})
	b.SetMaxWalkSpeed(300)
	b.SetGroundFriction(8)

	b.AddMovementInput(vmath.Vec3F{X: 1}, 1)
	b.update(100 * time.Millisecond)
	if got := b.location.X; got < 1029 || got > 1031 {
		t.Errorf("Expected X near 1030, got %.2f", got)
	}

	for i := 0; i < 100; i++ {
		b.update(testStep)
	}
	if v := vmath.V3FMag2D(b.velocity); v > 1 {
		t.Errorf("Expected friction to stop the body, speed %.2f", v)
	}

	b.Jump()
	peak := 0.0
	for i := 0; i < 200; i++ {
		b.update(testStep)
		if b.location.Z > peak {
			peak = b.location.Z
		}
	}
	if peak < 50 {
		t.Errorf("Expected jump apex above 50, got %.2f", peak)
	}
	if b.IsFalling() || b.location.Z != 0 {
		t.Errorf("Expected body grounded, z %.2f", b.location.Z)
	}
}

func TestDroppedWeaponSettles(t *testing.T) {
	sb := newTestSandbox(t)
	sb.spawnStart(0)
	weapon := sb.char.EquippedWeapon()
	if weapon == nil {
		t.Fatal("Expected starting weapon")
	}
	if sb.arena.items[weapon.ID].attached == "" {
		t.Error("Expected equipped weapon attached to a socket")
	}
	start := weapon.Transform.Location

	sb.run(300 * time.Millisecond)
	sb.char.DropWeapon()
	if !sb.arena.items[weapon.ID].physics {
		t.Error("Expected physics while the weapon falls")
	}

	sb.run(time.Second)

	if weapon.State != item.StatePickup {
		t.Errorf("Expected Pickup after settling, got %v", weapon.State)
	}
	if sb.arena.items[weapon.ID].physics {
		t.Error("Expected physics off after settling")
	}
	moved := vmath.V3FMag2D(vmath.V3FSub(weapon.Transform.Location, start))
	if moved < 50 {
		t.Errorf("Expected the throw to carry the weapon, moved %.2f", moved)
	}
	if z := weapon.Transform.Location.Z; z < 0 {
		t.Errorf("Expected weapon above the floor, z %.2f", z)
	}
}

func TestReloadDrivenByAnimator(t *testing.T) {
	sb := newTestSandbox(t)
	sb.spawnStart(0)
	sb.run(300 * time.Millisecond)

	c := sb.char
	c.FireButtonPressed()
	c.FireButtonReleased()
	w := c.EquippedWeapon().Weapon
	if w.Ammo != w.MagazineCapacity-1 {
		t.Fatalf("Expected one round spent, got %d/%d", w.Ammo, w.MagazineCapacity)
	}
	if sb.fx.shots != 1 || sb.fx.last == nil {
		t.Errorf("Expected one bullet trace, got %d", sb.fx.shots)
	}

	sb.run(200 * time.Millisecond)
	if sb.fx.last != nil {
		t.Error("Expected bullet trace cleared after the flash")
	}

	c.ReloadButtonPressed()
	if c.Combat().State() != combat.StateReloading {
		t.Fatalf("Expected Reloading, got %v", c.Combat().State())
	}
	sb.run(500 * time.Millisecond)
	if !w.MovingClip {
		t.Error("Expected clip in hand mid reload")
	}

	sb.run(time.Second)
	if c.Combat().State() != combat.StateUnoccupied {
		t.Errorf("Expected Unoccupied after the montage, got %v", c.Combat().State())
	}
	if w.MovingClip {
		t.Error("Expected clip released")
	}
	if w.Ammo != w.MagazineCapacity {
		t.Errorf("Expected full magazine, got %d/%d", w.Ammo, w.MagazineCapacity)
	}
}

func TestSpawnRandomStaysInArena(t *testing.T) {
	sb := newTestSandbox(t)
	for i := 0; i < 40; i++ {
		it := sb.spawnRandom()
		loc := it.Transform.Location
		if loc.X < 0 || loc.X > arenaWidth || loc.Y < 0 || loc.Y > arenaHeight {
			t.Errorf("Expected item inside the arena, got %+v", loc)
		}
		if it.Rarity == item.RarityUnranked || it.Rarity >= item.RarityCount {
			t.Errorf("Expected ranked rarity, got %v", it.Rarity)
		}
		if it.IsAmmo() && it.Count < 15 {
			t.Errorf("Expected ammo stack of at least 15, got %d", it.Count)
		}
	}
	if got := sb.world.Len(); got != 40 {
		t.Errorf("Expected 40 items, got %d", got)
	}
}

func TestInputKeys(t *testing.T) {
	sb := newTestSandbox(t)
	sb.spawnStart(0)
	sb.run(300 * time.Millisecond)

	press := func(r rune) {
		sb.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	press('z')
	if !sb.char.Combat().AimButtonHeld() {
		t.Error("Expected aim toggled on")
	}
	press('z')
	if sb.char.Combat().AimButtonHeld() {
		t.Error("Expected aim toggled off")
	}

	press('c')
	if !sb.char.Crouching() {
		t.Error("Expected crouch")
	}

	press('n')
	if got := sb.world.Len(); got != 2 {
		t.Errorf("Expected spawned item, got %d items", got)
	}

	press('m')
	if !sb.player.IsMuted() {
		t.Error("Expected mute toggled")
	}

	sb.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	select {
	case <-sb.quit:
	default:
		t.Error("Expected quit requested")
	}
	sb.requestQuit()
}

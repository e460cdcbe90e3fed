package main

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunplay/audio"
	"github.com/lixenwraith/gunplay/character"
	"github.com/lixenwraith/gunplay/config"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/status"
	"github.com/lixenwraith/gunplay/vmath"
)

// Tables are the data lookups the sandbox spawns from
type Tables struct {
	Weapons  item.WeaponLookup
	Rarities item.RarityLookup
	Types    []item.WeaponType
}

// sandbox owns one character, its items and the host collaborators
// Everything except quit runs on the loop goroutine
type sandbox struct {
	screen tcell.Screen
	loop   *engine.Loop
	timers *engine.Timers
	reg    *status.Registry
	rng    *vmath.FastRand
	tables Tables

	world  *item.World
	arena  *arena
	body   *body
	char   *character.Character
	anim   *animator
	fx     *effects
	player *audio.Player

	showStats bool
	lastMouse int
	hasMouse  bool

	quit     chan struct{}
	quitOnce sync.Once
}

func newSandbox(cfg *config.Config, tables Tables, player *audio.Player, reg *status.Registry, seed uint64) *sandbox {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if player == nil {
		player = audio.NewPlayer(nil, reg)
	}
	timers := engine.NewTimers()
	rng := vmath.NewFastRand(seed)

	sb := &sandbox{
		timers: timers,
		reg:    reg,
		rng:    rng,
		tables: tables,
		arena:  newArena(),
		body:   newBody(vmath.Vec3F{X: arenaWidth / 2, Y: arenaHeight / 2}),
		player: player,
		quit:   make(chan struct{}),
	}

	sb.world = item.NewWorld(item.Deps{
		Timers:    timers,
		Presenter: sb.arena,
		Rand:      rng,
		Weapons:   tables.Weapons,
		Rarities:  tables.Rarities,
		Status:    reg,
	}, cfg.ItemTuning())
	sb.arena.world = sb.world

	camera := func() vmath.Transform { return sb.char.CameraTransform() }
	sb.anim = &animator{timers: timers}
	sb.fx = &effects{timers: timers, camera: camera}

	sb.char = character.New(character.Deps{
		World:    sb.world,
		Audio:    player,
		Animator: sb.anim,
		Effects:  sb.fx,
		Tracer:   &tracer{arena: sb.arena, camera: camera},
		Body:     sb.body,
		Status:   reg,
	}, cfg.CharacterSettings())
	sb.anim.char = sb.char
	sb.arena.onOverlap = sb.char.IncrementOverlappedItemCount
	sb.char.SetCameraLocation(sb.body.eye())

	return sb
}

// spawnStart arms the character and scatters count items around the arena
func (sb *sandbox) spawnStart(count int) {
	at := vmath.Transform{Location: vmath.V3FAdd(sb.body.location, vmath.Vec3F{Z: handHeight})}
	sb.char.Spawn(sb.world.SpawnWeapon("", item.WeaponSubmachineGun, item.RarityCommon, at))
	for i := 0; i < count; i++ {
		sb.spawnRandom()
	}
	log.Printf("sandbox: spawned %d items", sb.world.Len())
}

// spawnRandom drops a weapon or an ammo stack at a random spot
func (sb *sandbox) spawnRandom() *item.Item {
	at := vmath.Transform{
		Location: vmath.Vec3F{
			X: sb.rng.Range(200, arenaWidth-200),
			Y: sb.rng.Range(200, arenaHeight-200),
		},
		Rotation: vmath.Rotator{Yaw: sb.rng.Range(-180, 180)},
	}
	rarity := item.Rarity(1 + sb.rng.Intn(int(item.RarityCount)-1))

	if len(sb.tables.Types) > 0 && sb.rng.Intn(2) == 0 {
		wt := sb.tables.Types[sb.rng.Intn(len(sb.tables.Types))]
		return sb.world.SpawnWeapon("", wt, rarity, at)
	}
	ammo := item.AmmoType(sb.rng.Intn(int(item.AmmoTypeCount)))
	return sb.world.SpawnAmmo(ammo.String()+" ammo", ammo, 15+sb.rng.Intn(31), rarity, at)
}

// frame is the loop step: body, camera, character, items, then draw
func (sb *sandbox) frame(dt time.Duration) {
	sb.body.update(dt)
	sb.char.SetCameraLocation(sb.body.eye())
	sb.char.Advance(dt)
	sb.world.Tick(dt)
	sb.arena.simulate(dt)
	sb.arena.updateOverlaps(sb.body.location)

	if sb.screen != nil {
		sb.render()
	}
}

func (sb *sandbox) requestQuit() {
	sb.quitOnce.Do(func() { close(sb.quit) })
}

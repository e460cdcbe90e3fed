package main

import (
	"log"
	"time"

	"github.com/lixenwraith/gunplay/character"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

const (
	muzzleFlashTime = 60 * time.Millisecond
	bulletRange     = 4000.0
)

// animator stands in for montage playback; the reload montage drives the clip
// and finish notifies on timers
type animator struct {
	timers *engine.Timers
	char   *character.Character

	montage string
	section string
	notify  []engine.TimerHandle
}

func (a *animator) PlayMontage(montage, section string) {
	a.montage, a.section = montage, section
	if montage != parameter.CombatReloadMontage || a.char == nil {
		return
	}

	for _, h := range a.notify {
		a.timers.Cancel(h)
	}
	length := parameter.CombatReloadMontageLength
	a.notify = []engine.TimerHandle{
		a.timers.Schedule(length*3/10, a.char.GrabClip),
		a.timers.Schedule(length*7/10, a.char.ReleaseClip),
		a.timers.Schedule(length, func() {
			a.char.FinishReloading()
			a.montage, a.section = "", ""
		}),
	}
	log.Printf("sandbox: montage %s section %q", montage, section)
}

// shot is the last bullet trace kept for drawing
type shot struct {
	from, to vmath.Vec3F
	flash    engine.TimerHandle
}

// effects records bullet traces for the renderer
type effects struct {
	timers *engine.Timers
	camera func() vmath.Transform
	last   *shot
	shots  int
	flash  string
}

func (e *effects) SendBullet(weapon *item.Item) {
	cam := e.camera()
	dir := cam.Rotation.YawOnly().Forward()
	end := vmath.V3FAdd(cam.Location, vmath.V3FScale(dir, bulletRange))
	end.X = vmath.Clamp(end.X, 0, arenaWidth)
	end.Y = vmath.Clamp(end.Y, 0, arenaHeight)

	if e.last != nil {
		e.timers.Cancel(e.last.flash)
	}
	s := &shot{from: cam.Location, to: end}
	s.flash = e.timers.Schedule(muzzleFlashTime, func() {
		if e.last == s {
			e.last = nil
		}
	})
	e.last = s
	e.shots++
	if weapon.IsWeapon() {
		e.flash = weapon.Weapon.MuzzleFlash
	}
}

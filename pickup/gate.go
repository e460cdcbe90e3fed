package pickup

import (
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/engine"
)

// Audio plays sound cues
type Audio interface {
	PlaySound(sound core.SoundType, force bool)
}

// SoundGate rate-limits pickup and equip sounds so a burst of acquisitions plays one cue
type SoundGate struct {
	timers *engine.Timers
	audio  Audio
	reset  time.Duration

	pickupReady bool
	equipReady  bool
	pickupTimer engine.TimerHandle
	equipTimer  engine.TimerHandle
}

func NewSoundGate(timers *engine.Timers, audio Audio, reset time.Duration) *SoundGate {
	return &SoundGate{
		timers:      timers,
		audio:       audio,
		reset:       reset,
		pickupReady: true,
		equipReady:  true,
	}
}

func (g *SoundGate) PickupReady() bool { return g.pickupReady }

func (g *SoundGate) EquipReady() bool { return g.equipReady }

// PlayPickup plays s if forced or the pickup cooldown is clear; forced plays leave the cooldown alone
func (g *SoundGate) PlayPickup(s core.SoundType, force bool) bool {
	return g.play(s, force, &g.pickupReady, &g.pickupTimer)
}

// PlayEquip is PlayPickup for the equip cue
func (g *SoundGate) PlayEquip(s core.SoundType, force bool) bool {
	return g.play(s, force, &g.equipReady, &g.equipTimer)
}

// play reports whether a sound was sent; a missing sound still arms the cooldown
func (g *SoundGate) play(s core.SoundType, force bool, ready *bool, handle *engine.TimerHandle) bool {
	audible := s != core.SoundNone && g.audio != nil
	if force {
		if audible {
			g.audio.PlaySound(s, true)
		}
		return audible
	}
	if !*ready {
		return false
	}

	*ready = false
	g.timers.Cancel(*handle)
	*handle = g.timers.Schedule(g.reset, func() { *ready = true })
	if audible {
		g.audio.PlaySound(s, false)
	}
	return audible
}

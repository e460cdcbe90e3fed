package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/status"
)

// Player mixes procedural sound effects into the speaker
// PlaySound is safe to call from the game loop while the speaker goroutine streams
type Player struct {
	mu     sync.Mutex
	config *Config
	mixer  *beep.Mixer
	sink   func(beep.Streamer)

	// voices are released on the speaker goroutine under the speaker lock
	voices [core.SoundTypeCount]atomic.Int32

	initialized bool
	muted       atomic.Bool

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewPlayer creates a player; nothing is audible until Start
func NewPlayer(cfg *Config, reg *status.Registry) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	p := &Player{
		config:      cfg,
		mixer:       &beep.Mixer{},
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the speaker and begins playing the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Close clears the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	for i := range p.voices {
		p.voices[i].Store(0)
	}
	p.sink = nil
	p.initialized = false
}

// PlaySound queues st; a sound already playing MaxVoicesPerSound times is dropped unless forced
func (p *Player) PlaySound(st core.SoundType, force bool) {
	if st == core.SoundNone || st >= core.SoundTypeCount || p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil {
		return
	}
	if !force && int(p.voices[st].Load()) >= parameter.AudioMaxVoicesPerSound {
		p.statDropped.Add(1)
		return
	}
	effect := GetSoundEffect(st, p.config)
	if effect == nil {
		return
	}

	p.voices[st].Add(1)
	p.statPlayed.Add(1)
	p.sink(beep.Seq(effect, beep.Callback(func() { p.release(st) })))
}

// release runs on the speaker goroutine when a voice finishes
func (p *Player) release(st core.SoundType) {
	if p.voices[st].Add(-1) < 0 {
		p.voices[st].Store(0)
	}
}

// Voices reports how many copies of st are playing
func (p *Player) Voices(st core.SoundType) int {
	if st >= core.SoundTypeCount {
		return 0
	}
	return int(p.voices[st].Load())
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// SetVolume sets master volume for sounds queued after the call
func (p *Player) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	p.mu.Lock()
	p.config.MasterVolume = vol
	p.mu.Unlock()
}

// Stats returns played and dropped counts
func (p *Player) Stats() (played, dropped int64) {
	return p.statPlayed.Load(), p.statDropped.Load()
}

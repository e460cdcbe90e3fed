package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/parameter"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// decayFloor is the gain left at the end of a shaped tail, about -60 dB
const decayFloor = 0.001

// sweep is an oscillator whose pitch glides exponentially from one frequency to another
// A zero frequency holds the other end; noise ignores pitch
type sweep struct {
	wave     Wave
	from, to float64
	rate     beep.SampleRate
	length   int
	pos      int
	phase    float64
}

// NewSweep creates an oscillator gliding from one pitch to another over d
func NewSweep(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{wave: wave, from: from, to: to, rate: rate, length: rate.N(d)}
}

func (s *sweep) freq() float64 {
	if s.from <= 0 || s.to <= 0 || s.length <= 1 {
		return math.Max(s.from, s.to)
	}
	return s.from * math.Pow(s.to/s.from, float64(s.pos)/float64(s.length-1))
}

func (s *sweep) sample() float64 {
	switch s.wave {
	case WaveSquare:
		return math.Copysign(1, 0.5-s.phase)
	case WaveSaw:
		return 1 - 2*s.phase
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && s.pos < s.length {
		v := s.sample()
		samples[n] = [2]float64{v, v}
		s.phase += s.freq() / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, n > 0
}

func (s *sweep) Err() error { return nil }

// shaper cuts a stream to length with a linear attack, a hold at full gain,
// then an exponential decay down to decayFloor
type shaper struct {
	streamer beep.Streamer
	length   int
	attack   int
	hold     int
	pos      int
	gain     float64
	k        float64
}

// NewShaper shapes s over d; attack and hold are taken from the start of d
func NewShaper(s beep.Streamer, d, attack, hold time.Duration, rate beep.SampleRate) beep.Streamer {
	e := &shaper{
		streamer: s,
		length:   rate.N(d),
		attack:   rate.N(attack),
		hold:     rate.N(hold),
		gain:     1,
		k:        1,
	}
	if tail := e.length - e.attack - e.hold; tail > 0 {
		e.k = math.Pow(decayFloor, 1/float64(tail))
	}
	return e
}

func (e *shaper) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.length {
		return 0, false
	}
	if left := e.length - e.pos; len(samples) > left {
		samples = samples[:left]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain
		switch {
		case e.pos < e.attack:
			g = float64(e.pos) / float64(e.attack)
		case e.pos >= e.attack+e.hold:
			e.gain *= e.k
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shaper) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear gain
// math.Log2(0) is -Inf, so 0 volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a pure sine from beep's generators, cut to duration
func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Above Nyquist; fall back to the local oscillator
		return NewSweep(WaveSine, freq, freq, duration, rate)
	}
	return beep.Take(rate.N(duration), sine)
}

// gunshotVoice is the starting pitch of the low body of a shot; it falls two octaves
var gunshotVoice = map[core.SoundType]float64{
	core.SoundFireSMG:    280,
	core.SoundFireAR:     220,
	core.SoundFirePistol: 360,
}

// CreateGunshotSound generates a noise crack over a falling saw thump
func CreateGunshotSound(st core.SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GunshotDuration
	voice := gunshotVoice[st]

	crack := NewShaper(NewSweep(WaveNoise, 0, 0, d, rate), d, parameter.GunshotAttack, 0, rate)
	body := NewShaper(NewSweep(WaveSaw, voice, voice/4, d, rate), d, parameter.GunshotAttack, parameter.GunshotHold, rate)

	mixed := beep.Mix(
		newVolume(crack, 0.6),
		newVolume(body, 0.4),
	)
	return newVolume(mixed, cfg.Volume(st))
}

// CreatePickupSound generates a rising two-note chime
func CreatePickupSound(st core.SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.PickupChimeDuration / 2

	low, high := 659.25, 987.77 // E5, B5
	if st == core.SoundPickupAmmo {
		low, high = 523.25, 783.99 // C5, G5
	}

	n1 := NewShaper(tone(low, d, rate), d, parameter.PickupChimeAttack, parameter.PickupChimeHold/2, rate)
	n2 := NewShaper(tone(high, d, rate), d, parameter.PickupChimeAttack, parameter.PickupChimeHold, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(st))
}

// CreateEquipSound generates a short mechanical clack
func CreateEquipSound(st core.SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.EquipClackDuration

	freq := 220.0
	if st == core.SoundEquipAmmo {
		freq = 330.0
	}
	knock := NewShaper(NewSweep(WaveSquare, freq, freq*0.7, d, rate), d, parameter.EquipClackAttack, parameter.EquipClackHold, rate)
	rattle := NewShaper(NewSweep(WaveNoise, 0, 0, d, rate), d, parameter.EquipClackAttack, 0, rate)

	mixed := beep.Mix(
		newVolume(knock, 0.5),
		newVolume(rattle, 0.3),
	)
	return newVolume(mixed, cfg.Volume(st))
}

func click(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.ReloadClickDuration
	return NewShaper(NewSweep(WaveSquare, freq, freq*0.8, d, rate), d, time.Millisecond, 0, rate)
}

// CreateReloadSound generates the magazine out and magazine in clicks
func CreateReloadSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		click(400, rate),
		beep.Silence(rate.N(parameter.ReloadClickGap)),
		click(600, rate),
	)
	return newVolume(seq, cfg.Volume(core.SoundReload))
}

// CreateDryFireSound generates a single hollow click
func CreateDryFireSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(click(900, rate), cfg.Volume(core.SoundDryFire))
}

// GetSoundEffect returns the streamer for st, nil for SoundNone or unknown types
func GetSoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	switch st {
	case core.SoundFireSMG, core.SoundFireAR, core.SoundFirePistol:
		return CreateGunshotSound(st, cfg)
	case core.SoundPickupWeapon, core.SoundPickupAmmo:
		return CreatePickupSound(st, cfg)
	case core.SoundEquipWeapon, core.SoundEquipAmmo:
		return CreateEquipSound(st, cfg)
	case core.SoundReload:
		return CreateReloadSound(cfg)
	case core.SoundDryFire:
		return CreateDryFireSound(cfg)
	default:
		return nil
	}
}

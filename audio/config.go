package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/parameter"
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultConfig returns default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundFireSMG:      0.7,
			core.SoundFireAR:       0.8,
			core.SoundFirePistol:   0.9,
			core.SoundPickupWeapon: 0.6,
			core.SoundPickupAmmo:   0.5,
			core.SoundEquipWeapon:  0.8,
			core.SoundEquipAmmo:    0.6,
			core.SoundReload:       0.7,
			core.SoundDryFire:      0.5,
		},
	}
}

// Volume is the effective gain for st
func (c *Config) Volume(st core.SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

// ApplyEnv loads per-effect volumes from GUNPLAY_SFX_VOLUMES, a JSON object keyed
// by sound name, and the sample rate from GUNPLAY_SAMPLE_RATE
func (c *Config) ApplyEnv() {
	if effectVols := os.Getenv("GUNPLAY_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				st, ok := core.ParseSoundType(name)
				if !ok || st == core.SoundNone {
					continue
				}
				if v < 0 {
					v = 0
				}
				c.EffectVolumes[st] = v
			}
		}
	}

	if sampleRate := os.Getenv("GUNPLAY_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gunplay/character"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/pickup"
	"github.com/lixenwraith/gunplay/vmath"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrVolumeRange         = errors.New("volume must be within [0, 1]")
	ErrSampleRate          = errors.New("sample rate must be positive")
	ErrCurve               = errors.New("curve needs at least one key")
	ErrAmmo                = errors.New("starting ammo must not be negative")
)

type Config struct {
	Combat    CombatConfig    `toml:"combat"`
	Pickup    PickupConfig    `toml:"pickup"`
	Character CharacterConfig `toml:"character"`
	Audio     AudioConfig     `toml:"audio"`
	Data      DataConfig      `toml:"data"`
	Loop      LoopConfig      `toml:"loop"`
}

type CombatConfig struct {
	ShootDuration   time.Duration `toml:"shoot_duration"`
	EquipDuration   time.Duration `toml:"equip_duration"` // 0 disables the Equipping state
	StartingAmmo9mm int           `toml:"starting_ammo_9mm"`
	StartingAmmoAR  int           `toml:"starting_ammo_ar"`
}

// CurveKey is one [[pickup.z_curve]] entry
type CurveKey struct {
	T float64 `toml:"t"`
	V float64 `toml:"v"`
}

type PickupConfig struct {
	InterpDuration time.Duration `toml:"interp_duration"`
	InterpSpeed    float64       `toml:"interp_speed"`
	SoundReset     time.Duration `toml:"sound_reset"`
	ZCurve         []CurveKey    `toml:"z_curve"`

	ThrowTime      time.Duration `toml:"throw_time"`
	ThrowImpulse   float64       `toml:"throw_impulse"`
	ThrowSpreadMin float64       `toml:"throw_spread_min"`
	ThrowSpreadMax float64       `toml:"throw_spread_max"`
}

type CharacterConfig struct {
	DefaultFOV  float64 `toml:"default_fov"`
	ZoomedFOV   float64 `toml:"zoomed_fov"`
	ZoomSpeed   float64 `toml:"zoom_speed"`
	BaseSpeed   float64 `toml:"base_speed"`
	CrouchSpeed float64 `toml:"crouch_speed"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
}

// DataConfig points at YAML tables; empty paths use the embedded defaults
type DataConfig struct {
	WeaponTable string `toml:"weapon_table"`
	RarityTable string `toml:"rarity_table"`
}

type LoopConfig struct {
	TickInterval time.Duration `toml:"tick_interval"`
	Seed         uint64        `toml:"seed"` // 0 seeds from the clock
}

// Default returns the stock configuration
func Default() *Config {
	z := pickup.DefaultSettings().ZCurve.Keys()
	keys := make([]CurveKey, len(z))
	for i, k := range z {
		keys[i] = CurveKey{T: k.T, V: k.V}
	}
	return &Config{
		Combat: CombatConfig{
			ShootDuration:   parameter.CombatShootTimeDuration,
			EquipDuration:   parameter.CombatEquipDuration,
			StartingAmmo9mm: parameter.CombatStartingAmmo9mm,
			StartingAmmoAR:  parameter.CombatStartingAmmoAR,
		},
		Pickup: PickupConfig{
			InterpDuration: parameter.PickupZCurveTime,
			InterpSpeed:    parameter.PickupInterpSpeed,
			SoundReset:     parameter.PickupSoundResetTime,
			ZCurve:         keys,
			ThrowTime:      parameter.PickupThrowTime,
			ThrowImpulse:   parameter.PickupThrowImpulse,
			ThrowSpreadMin: parameter.PickupThrowSpreadMin,
			ThrowSpreadMax: parameter.PickupThrowSpreadMax,
		},
		Character: CharacterConfig{
			DefaultFOV:  parameter.CameraDefaultFOV,
			ZoomedFOV:   parameter.CameraZoomedFOV,
			ZoomSpeed:   parameter.CameraZoomInterpSpeed,
			BaseSpeed:   parameter.CharacterBaseMovementSpeed,
			CrouchSpeed: parameter.CharacterCrouchMovementSpeed,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   parameter.AudioSampleRate,
		},
		Loop: LoopConfig{
			TickInterval: parameter.EngineTickInterval,
		},
	}
}

// Load reads path over the defaults; unknown keys are logged, not fatal
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data), path)
}

// Parse decodes TOML text over the defaults; name labels errors and warnings
func Parse(text, name string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: %s: unknown key %q ignored", name, key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value
func (c *Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"combat.shoot_duration", c.Combat.ShootDuration},
		{"pickup.interp_duration", c.Pickup.InterpDuration},
		{"pickup.sound_reset", c.Pickup.SoundReset},
		{"pickup.throw_time", c.Pickup.ThrowTime},
		{"loop.tick_interval", c.Loop.TickInterval},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s = %v: %w", d.name, d.d, ErrNonPositiveDuration)
		}
	}
	if c.Combat.EquipDuration < 0 {
		return fmt.Errorf("combat.equip_duration = %v: %w", c.Combat.EquipDuration, ErrNonPositiveDuration)
	}
	if c.Combat.StartingAmmo9mm < 0 || c.Combat.StartingAmmoAR < 0 {
		return ErrAmmo
	}
	if len(c.Pickup.ZCurve) == 0 {
		return fmt.Errorf("pickup.z_curve: %w", ErrCurve)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume = %v: %w", c.Audio.MasterVolume, ErrVolumeRange)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate = %d: %w", c.Audio.SampleRate, ErrSampleRate)
	}
	return nil
}

// ApplyEnv overrides audio settings from GUNPLAY_AUDIO_ENABLED and GUNPLAY_MASTER_VOLUME (0-100)
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("GUNPLAY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(strings.TrimSpace(enabled)); err == nil {
			c.Audio.Enabled = val
		}
	}
	if volume := os.Getenv("GUNPLAY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(strings.TrimSpace(volume)); err == nil {
			c.Audio.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}
}

// CharacterSettings maps the file onto character defaults
func (c *Config) CharacterSettings() character.Settings {
	s := character.DefaultSettings()
	s.Combat.ShootDuration = c.Combat.ShootDuration
	s.Combat.EquipDuration = c.Combat.EquipDuration
	s.StartingAmmo = map[item.AmmoType]int{
		item.Ammo9mm: c.Combat.StartingAmmo9mm,
		item.AmmoAR:  c.Combat.StartingAmmoAR,
	}

	s.Pickup.Duration = c.Pickup.InterpDuration
	s.Pickup.InterpSpeed = c.Pickup.InterpSpeed
	s.Pickup.ZCurve = c.zCurve()
	s.SoundReset = c.Pickup.SoundReset

	s.DefaultFOV = c.Character.DefaultFOV
	s.ZoomedFOV = c.Character.ZoomedFOV
	s.ZoomSpeed = c.Character.ZoomSpeed
	s.BaseSpeed = c.Character.BaseSpeed
	s.CrouchSpeed = c.Character.CrouchSpeed
	return s
}

// ItemTuning maps the throw settings onto item defaults
func (c *Config) ItemTuning() item.Tuning {
	t := item.DefaultTuning()
	t.ThrowTime = c.Pickup.ThrowTime
	t.ThrowImpulse = c.Pickup.ThrowImpulse
	t.ThrowSpreadMin = c.Pickup.ThrowSpreadMin
	t.ThrowSpreadMax = c.Pickup.ThrowSpreadMax
	return t
}

func (c *Config) zCurve() *vmath.Curve {
	keys := make([]vmath.CurveKey, len(c.Pickup.ZCurve))
	for i, k := range c.Pickup.ZCurve {
		keys[i] = vmath.CurveKey{T: k.T, V: k.V}
	}
	return vmath.NewCurve(keys...)
}

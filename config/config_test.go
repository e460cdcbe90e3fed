package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/gunplay/item"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Combat.ShootDuration != 50*time.Millisecond {
		t.Errorf("Expected shoot duration 50ms, got %v", cfg.Combat.ShootDuration)
	}
	if len(cfg.Pickup.ZCurve) != 3 {
		t.Errorf("Expected 3 z curve keys, got %d", len(cfg.Pickup.ZCurve))
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "gunplay.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Combat.ShootDuration != 40*time.Millisecond {
		t.Errorf("Expected 40ms, got %v", cfg.Combat.ShootDuration)
	}
	if cfg.Combat.EquipDuration != 0 {
		t.Errorf("Expected equip disabled, got %v", cfg.Combat.EquipDuration)
	}
	if cfg.Combat.StartingAmmoAR != 120 {
		t.Errorf("Expected untouched AR default 120, got %d", cfg.Combat.StartingAmmoAR)
	}
	if len(cfg.Pickup.ZCurve) != 2 || cfg.Pickup.ZCurve[1].V != 1 {
		t.Errorf("Expected replaced z curve, got %+v", cfg.Pickup.ZCurve)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected audio off at 0.25, got %v/%v", cfg.Audio.Enabled, cfg.Audio.MasterVolume)
	}
	if cfg.Data.WeaponTable != "tables/weapons.yaml" || cfg.Data.RarityTable != "" {
		t.Errorf("Unexpected data paths %+v", cfg.Data)
	}
	if cfg.Loop.TickInterval != 8*time.Millisecond || cfg.Loop.Seed != 7 {
		t.Errorf("Unexpected loop %+v", cfg.Loop)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"negative shoot", "[combat]\nshoot_duration = \"-1ms\"\n", ErrNonPositiveDuration},
		{"zero tick", "[loop]\ntick_interval = \"0s\"\n", ErrNonPositiveDuration},
		{"loud", "[audio]\nmaster_volume = 1.5\n", ErrVolumeRange},
		{"rate", "[audio]\nsample_rate = 0\n", ErrSampleRate},
		{"ammo", "[combat]\nstarting_ammo_ar = -3\n", ErrAmmo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, tt.name)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("[combat\n", "broken"); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	cfg, err := Parse("[combat]\nbayonet = true\n", "extra")
	if err != nil {
		t.Fatalf("Expected unknown keys to be tolerated, got %v", err)
	}
	if cfg.Combat.StartingAmmo9mm != 50 {
		t.Errorf("Expected defaults kept, got %d", cfg.Combat.StartingAmmo9mm)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GUNPLAY_AUDIO_ENABLED", "false")
	t.Setenv("GUNPLAY_MASTER_VOLUME", "250")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.MasterVolume)
	}

	t.Setenv("GUNPLAY_MASTER_VOLUME", "loud")
	cfg = Default()
	cfg.ApplyEnv()
	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("Expected bad value ignored, got %v", cfg.Audio.MasterVolume)
	}
}

func TestCharacterSettingsMapping(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "gunplay.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := cfg.CharacterSettings()

	if s.Combat.EquipDuration != 0 || s.Combat.ShootDuration != 40*time.Millisecond {
		t.Errorf("Unexpected combat settings %+v", s.Combat)
	}
	if s.StartingAmmo[item.Ammo9mm] != 90 {
		t.Errorf("Expected 90 starting 9mm, got %d", s.StartingAmmo[item.Ammo9mm])
	}
	if s.Pickup.Duration != time.Second || s.SoundReset != 150*time.Millisecond {
		t.Errorf("Unexpected pickup timing %v/%v", s.Pickup.Duration, s.SoundReset)
	}
	if got := s.Pickup.ZCurve.Sample(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected linear z curve 0.5, got %f", got)
	}
	if s.ZoomedFOV != 40 {
		t.Errorf("Expected zoomed FOV 40, got %f", s.ZoomedFOV)
	}

	tuning := cfg.ItemTuning()
	if tuning.ThrowTime != 700*time.Millisecond {
		t.Errorf("Expected default throw time, got %v", tuning.ThrowTime)
	}
}

package core

import "testing"

func TestParseSoundType(t *testing.T) {
	for st := SoundNone; st < SoundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Expected %v to parse back, got %v (ok=%v)", st, got, ok)
		}
	}

	if got, ok := ParseSoundType("  FIRE_SMG "); !ok || got != SoundFireSMG {
		t.Errorf("Expected case-insensitive match, got %v (ok=%v)", got, ok)
	}
	if got, ok := ParseSoundType(""); !ok || got != SoundNone {
		t.Errorf("Expected empty name to be SoundNone, got %v", got)
	}
	if _, ok := ParseSoundType("kazoo"); ok {
		t.Error("Expected unknown name to fail")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected out-of-range sound to stringify as unknown")
	}
}

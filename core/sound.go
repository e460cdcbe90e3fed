package core

import (
	"strings"
)

// SoundType identifies a sound cue requested by gameplay code
type SoundType int

const (
	SoundNone         SoundType = iota // Silent, missing table entry
	SoundFireSMG                       // Submachine gun shot
	SoundFireAR                        // Assault rifle shot
	SoundFirePistol                    // Pistol shot
	SoundPickupWeapon                  // Weapon starts flying to the character
	SoundPickupAmmo                    // Ammo starts flying to the character
	SoundEquipWeapon                   // Weapon lands in hand
	SoundEquipAmmo                     // Ammo merged into reserve
	SoundReload                        // Magazine swap
	SoundDryFire                       // Trigger on empty magazine
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundNone:         "none",
	SoundFireSMG:      "fire_smg",
	SoundFireAR:       "fire_ar",
	SoundFirePistol:   "fire_pistol",
	SoundPickupWeapon: "pickup_weapon",
	SoundPickupAmmo:   "pickup_ammo",
	SoundEquipWeapon:  "equip_weapon",
	SoundEquipAmmo:    "equip_ammo",
	SoundReload:       "reload",
	SoundDryFire:      "dry_fire",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a table name, case-insensitive
func ParseSoundType(name string) (SoundType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SoundNone, true
	}
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return SoundNone, false
}

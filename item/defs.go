package item

import (
	"time"

	"github.com/lixenwraith/gunplay/core"
)

// WeaponDef is one row of the weapon data table
type WeaponDef struct {
	Name             string
	AmmoType         AmmoType
	Ammo             int
	MagazineCapacity int
	FireRate         time.Duration
	Automatic        bool
	PickupSound      core.SoundType
	EquipSound       core.SoundType
	FireSound        core.SoundType
	ReloadSection    string
	ClipBone         string
	BoneToHide       string
	MuzzleFlash      string
}

// WeaponLookup resolves weapon rows by type
type WeaponLookup interface {
	Weapon(WeaponType) (WeaponDef, bool)
}

// Color is linear RGBA in [0, 1]
type Color struct {
	R, G, B, A float64
}

// RarityDef is one row of the rarity data table
type RarityDef struct {
	GlowColor          Color
	LightColor         Color
	DarkColor          Color
	Stars              int
	IconBackground     string
	CustomDepthStencil int
}

// RarityLookup resolves rarity rows
type RarityLookup interface {
	Rarity(Rarity) (RarityDef, bool)
}

// WeaponMap is an in-memory WeaponLookup
type WeaponMap map[WeaponType]WeaponDef

func (m WeaponMap) Weapon(wt WeaponType) (WeaponDef, bool) {
	def, ok := m[wt]
	return def, ok
}

// RarityMap is an in-memory RarityLookup
type RarityMap map[Rarity]RarityDef

func (m RarityMap) Rarity(r Rarity) (RarityDef, bool) {
	def, ok := m[r]
	return def, ok
}

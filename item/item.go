package item

import (
	"fmt"
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// ID is an arena handle into World; zero is never issued
type ID uint32

// Item is a pickup in the world, tagged by Kind with exactly one of Weapon or Ammo set
type Item struct {
	ID        ID
	Name      string
	Kind      Kind
	Rarity    Rarity
	State     State
	Transform vmath.Transform

	// Count is the stack size merged into the reserve for ammo
	Count int

	PickupSound core.SoundType
	EquipSound  core.SoundType

	// CanChangeCustomDepth is false while the item flies so tracing cannot toggle the outline
	CanChangeCustomDepth bool
	ActiveStars          [MaxStars]bool
	Style                RarityDef
	Glow                 Glow
	CustomDepth          bool

	// InterpTimer is the acquisition timer, sampled by the interp pulse
	InterpTimer engine.TimerHandle

	throwTimer engine.TimerHandle
	pulseTimer engine.TimerHandle

	Weapon *Weapon
	Ammo   *Ammo
}

// Ammo is the variant data of an ammo pickup
type Ammo struct {
	Type AmmoType
}

// Weapon is the variant data of a weapon pickup
type Weapon struct {
	Type             WeaponType
	AmmoType         AmmoType
	Ammo             int
	MagazineCapacity int
	FireRate         time.Duration
	Automatic        bool

	FireSound     core.SoundType
	ReloadSection string
	ClipBone      string
	BoneToHide    string
	MuzzleFlash   string

	// MovingClip is true between the grab and release clip notifies of a reload
	MovingClip bool

	Slide Slide
}

// Slide is the pistol slide kick state after a shot
type Slide struct {
	Moving       bool
	Displacement float64
	Recoil       float64
	timer        engine.TimerHandle
}

// DecrementAmmo removes one round, never below zero
func (w *Weapon) DecrementAmmo() {
	if w.Ammo > 0 {
		w.Ammo--
	}
}

// ReloadAmmo loads amount rounds; overfilling the magazine is a programming error
func (w *Weapon) ReloadAmmo(amount int) {
	if amount < 0 || w.Ammo+amount > w.MagazineCapacity {
		panic(fmt.Sprintf("item: reload %d into %d/%d overflows magazine", amount, w.Ammo, w.MagazineCapacity))
	}
	w.Ammo += amount
}

func (w *Weapon) ClipIsFull() bool {
	return w.Ammo >= w.MagazineCapacity
}

// Empty returns capacity left in the magazine
func (w *Weapon) Empty() int {
	if w.Ammo >= w.MagazineCapacity {
		return 0
	}
	return w.MagazineCapacity - w.Ammo
}

// defaultWeapon mirrors the SMG defaults used when no table row exists
func defaultWeapon(wt WeaponType) *Weapon {
	return &Weapon{
		Type:             wt,
		AmmoType:         Ammo9mm,
		Ammo:             parameter.CombatDefaultAmmo,
		MagazineCapacity: parameter.CombatDefaultMagazineCapacity,
		FireRate:         parameter.CombatDefaultFireRate,
		Automatic:        true,
		FireSound:        core.SoundFireSMG,
		ReloadSection:    parameter.CombatDefaultReloadSection,
		ClipBone:         parameter.CombatDefaultClipBone,
	}
}

// applyDef copies a weapon table row onto the item
func (it *Item) applyDef(def WeaponDef) {
	w := it.Weapon
	w.AmmoType = def.AmmoType
	w.Ammo = def.Ammo
	w.MagazineCapacity = def.MagazineCapacity
	if def.FireRate > 0 {
		w.FireRate = def.FireRate
	}
	w.Automatic = def.Automatic
	w.FireSound = def.FireSound
	if def.ReloadSection != "" {
		w.ReloadSection = def.ReloadSection
	}
	if def.ClipBone != "" {
		w.ClipBone = def.ClipBone
	}
	w.BoneToHide = def.BoneToHide
	w.MuzzleFlash = def.MuzzleFlash
	if w.Ammo > w.MagazineCapacity {
		w.Ammo = w.MagazineCapacity
	}
	if def.Name != "" && it.Name == "" {
		it.Name = def.Name
	}
	it.PickupSound = def.PickupSound
	it.EquipSound = def.EquipSound
}

// setActiveStars lights the first Stars() entries
func (it *Item) setActiveStars() {
	n := it.Rarity.Stars()
	for i := range it.ActiveStars {
		it.ActiveStars[i] = i < n
	}
}

// IsWeapon reports the variant, nil-safe
func (it *Item) IsWeapon() bool {
	return it != nil && it.Kind == KindWeapon && it.Weapon != nil
}

func (it *Item) IsAmmo() bool {
	return it != nil && it.Kind == KindAmmo && it.Ammo != nil
}

package item

import (
	"strings"
)

// Kind tags the variant carried by an Item
type Kind uint8

const (
	KindWeapon Kind = iota
	KindAmmo
)

func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// State is the lifecycle stage of an item
type State uint8

const (
	StatePickup         State = iota // Resting in the world, can be traced and acquired
	StateEquipInterping              // Flying toward the character
	StatePickedUp                    // Owned by the character, hidden
	StateEquipped                    // Held in hand
	StateFalling                     // Dropped, simulating physics until settled
)

func (s State) String() string {
	switch s {
	case StatePickup:
		return "Pickup"
	case StateEquipInterping:
		return "EquipInterping"
	case StatePickedUp:
		return "PickedUp"
	case StateEquipped:
		return "Equipped"
	case StateFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Rarity tiers; the ranked value doubles as the star count
type Rarity uint8

const (
	RarityUnranked Rarity = iota
	RarityDamaged
	RarityCommon
	RarityUncommon
	RarityRare
	RarityLegendary
	RarityCount
)

// MaxStars is the length of the star row shown on the pickup widget
const MaxStars = 5

var rarityNames = [RarityCount]string{
	RarityUnranked:  "Unranked",
	RarityDamaged:   "Damaged",
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RarityLegendary: "Legendary",
}

func (r Rarity) String() string {
	if r >= RarityCount {
		return "Unknown"
	}
	return rarityNames[r]
}

// Stars returns the number of active stars for the tier
func (r Rarity) Stars() int {
	if r >= RarityCount {
		return 0
	}
	return int(r)
}

func ParseRarity(name string) (Rarity, bool) {
	for i, n := range rarityNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Rarity(i), true
		}
	}
	return RarityUnranked, false
}

// WeaponType selects the weapon table row
type WeaponType uint8

const (
	WeaponSubmachineGun WeaponType = iota
	WeaponAssaultRifle
	WeaponPistol
	WeaponTypeCount
)

var weaponTypeNames = [WeaponTypeCount]string{
	WeaponSubmachineGun: "SubMachineGun",
	WeaponAssaultRifle:  "AssaultRifle",
	WeaponPistol:        "Pistol",
}

func (w WeaponType) String() string {
	if w >= WeaponTypeCount {
		return "Unknown"
	}
	return weaponTypeNames[w]
}

func ParseWeaponType(name string) (WeaponType, bool) {
	for i, n := range weaponTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return WeaponType(i), true
		}
	}
	return WeaponSubmachineGun, false
}

// AmmoType keys the character's ammo reserve
type AmmoType uint8

const (
	Ammo9mm AmmoType = iota
	AmmoAR
	AmmoTypeCount
)

var ammoTypeNames = [AmmoTypeCount]string{
	Ammo9mm: "9mm",
	AmmoAR:  "AR",
}

func (a AmmoType) String() string {
	if a >= AmmoTypeCount {
		return "Unknown"
	}
	return ammoTypeNames[a]
}

func ParseAmmoType(name string) (AmmoType, bool) {
	for i, n := range ammoTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return AmmoType(i), true
		}
	}
	return Ammo9mm, false
}

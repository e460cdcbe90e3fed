package data

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/item"
)

type weaponFile struct {
	Weapons []weaponRow `yaml:"weapons"`
}

type weaponRow struct {
	Type             string  `yaml:"type"`
	Name             string  `yaml:"name"`
	AmmoType         string  `yaml:"ammo_type"`
	Ammo             int     `yaml:"ammo"`
	MagazineCapacity int     `yaml:"magazine_capacity"`
	FireRate         float64 `yaml:"fire_rate"` // seconds
	Automatic        bool    `yaml:"automatic"`
	PickupSound      string  `yaml:"pickup_sound"`
	EquipSound       string  `yaml:"equip_sound"`
	FireSound        string  `yaml:"fire_sound"`
	ReloadSection    string  `yaml:"reload_section"`
	ClipBone         string  `yaml:"clip_bone"`
	BoneToHide       string  `yaml:"bone_to_hide"`
	MuzzleFlash      string  `yaml:"muzzle_flash"`
}

// WeaponTable holds weapon rows keyed by type
type WeaponTable struct {
	rows map[item.WeaponType]item.WeaponDef
}

// Get returns the row for wt
func (t *WeaponTable) Get(wt item.WeaponType) (item.WeaponDef, bool) {
	if t == nil {
		return item.WeaponDef{}, false
	}
	def, ok := t.rows[wt]
	return def, ok
}

// Weapon satisfies item.WeaponLookup
func (t *WeaponTable) Weapon(wt item.WeaponType) (item.WeaponDef, bool) {
	return t.Get(wt)
}

func (t *WeaponTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Types lists the loaded weapon types in declaration order of the enum
func (t *WeaponTable) Types() []item.WeaponType {
	if t == nil {
		return nil
	}
	out := make([]item.WeaponType, 0, len(t.rows))
	for wt := range t.rows {
		out = append(out, wt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func LoadWeaponTable(path string) (*WeaponTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapon table %s: %w", path, err)
	}
	return ParseWeaponTable(raw, path)
}

// DefaultWeaponTable returns the embedded table
func DefaultWeaponTable() (*WeaponTable, error) {
	raw, err := tableFS.ReadFile("tables/weapons.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded weapon table: %w", err)
	}
	return ParseWeaponTable(raw, "weapons.yaml")
}

func MustDefaultWeaponTable() *WeaponTable {
	t, err := DefaultWeaponTable()
	if err != nil {
		panic(err)
	}
	return t
}

// ParseWeaponTable validates raw against the weapon schema and builds the table
func ParseWeaponTable(raw []byte, label string) (*WeaponTable, error) {
	if err := validateYAML(raw, weaponSchema, label); err != nil {
		return nil, err
	}
	var f weaponFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	t := &WeaponTable{rows: make(map[item.WeaponType]item.WeaponDef, len(f.Weapons))}
	for i, row := range f.Weapons {
		wt, def, err := row.toDef()
		if err != nil {
			return nil, fmt.Errorf("%s: weapons[%d]: %w", label, i, err)
		}
		if _, dup := t.rows[wt]; dup {
			return nil, fmt.Errorf("%s: weapons[%d] %s: %w", label, i, wt, ErrDuplicate)
		}
		t.rows[wt] = def
	}
	return t, nil
}

func (r weaponRow) toDef() (item.WeaponType, item.WeaponDef, error) {
	wt, ok := item.ParseWeaponType(r.Type)
	if !ok {
		return 0, item.WeaponDef{}, fmt.Errorf("weapon type %q: %w", r.Type, ErrRow)
	}
	at, ok := item.ParseAmmoType(r.AmmoType)
	if !ok {
		return 0, item.WeaponDef{}, fmt.Errorf("ammo type %q: %w", r.AmmoType, ErrRow)
	}
	if r.Ammo > r.MagazineCapacity {
		return 0, item.WeaponDef{}, fmt.Errorf("ammo %d exceeds magazine %d: %w", r.Ammo, r.MagazineCapacity, ErrRow)
	}

	sounds := [3]core.SoundType{}
	for i, name := range [3]string{r.PickupSound, r.EquipSound, r.FireSound} {
		s, ok := core.ParseSoundType(name)
		if !ok {
			return 0, item.WeaponDef{}, fmt.Errorf("sound %q: %w", name, ErrRow)
		}
		sounds[i] = s
	}

	return wt, item.WeaponDef{
		Name:             r.Name,
		AmmoType:         at,
		Ammo:             r.Ammo,
		MagazineCapacity: r.MagazineCapacity,
		FireRate:         time.Duration(r.FireRate * float64(time.Second)),
		Automatic:        r.Automatic,
		PickupSound:      sounds[0],
		EquipSound:       sounds[1],
		FireSound:        sounds[2],
		ReloadSection:    r.ReloadSection,
		ClipBone:         r.ClipBone,
		BoneToHide:       r.BoneToHide,
		MuzzleFlash:      r.MuzzleFlash,
	}, nil
}

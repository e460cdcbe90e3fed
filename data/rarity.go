package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gunplay/item"
)

type rarityFile struct {
	Rarities []rarityRow `yaml:"rarities"`
}

type rarityRow struct {
	Rarity             string    `yaml:"rarity"`
	Stars              int       `yaml:"stars"`
	GlowColor          []float64 `yaml:"glow_color"`
	LightColor         []float64 `yaml:"light_color"`
	DarkColor          []float64 `yaml:"dark_color"`
	IconBackground     string    `yaml:"icon_background"`
	CustomDepthStencil int       `yaml:"custom_depth_stencil"`
}

// RarityTable holds display rows per rarity tier
type RarityTable struct {
	rows map[item.Rarity]item.RarityDef
}

func (t *RarityTable) Get(r item.Rarity) (item.RarityDef, bool) {
	if t == nil {
		return item.RarityDef{}, false
	}
	def, ok := t.rows[r]
	return def, ok
}

// Rarity satisfies item.RarityLookup
func (t *RarityTable) Rarity(r item.Rarity) (item.RarityDef, bool) {
	return t.Get(r)
}

func (t *RarityTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func LoadRarityTable(path string) (*RarityTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rarity table %s: %w", path, err)
	}
	return ParseRarityTable(raw, path)
}

func DefaultRarityTable() (*RarityTable, error) {
	raw, err := tableFS.ReadFile("tables/rarity.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded rarity table: %w", err)
	}
	return ParseRarityTable(raw, "rarity.yaml")
}

func MustDefaultRarityTable() *RarityTable {
	t, err := DefaultRarityTable()
	if err != nil {
		panic(err)
	}
	return t
}

func ParseRarityTable(raw []byte, label string) (*RarityTable, error) {
	if err := validateYAML(raw, raritySchema, label); err != nil {
		return nil, err
	}
	var f rarityFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	t := &RarityTable{rows: make(map[item.Rarity]item.RarityDef, len(f.Rarities))}
	for i, row := range f.Rarities {
		r, ok := item.ParseRarity(row.Rarity)
		if !ok {
			return nil, fmt.Errorf("%s: rarities[%d] %q: %w", label, i, row.Rarity, ErrRow)
		}
		if _, dup := t.rows[r]; dup {
			return nil, fmt.Errorf("%s: rarities[%d] %s: %w", label, i, r, ErrDuplicate)
		}
		t.rows[r] = item.RarityDef{
			GlowColor:          color(row.GlowColor),
			LightColor:         color(row.LightColor),
			DarkColor:          color(row.DarkColor),
			Stars:              row.Stars,
			IconBackground:     row.IconBackground,
			CustomDepthStencil: row.CustomDepthStencil,
		}
	}
	return t, nil
}

// color reads RGBA; a missing color is opaque black
func color(c []float64) item.Color {
	if len(c) < 4 {
		return item.Color{A: 1}
	}
	return item.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

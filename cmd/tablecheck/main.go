// tablecheck validates weapon and rarity tables against their schemas and prints the rows
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lixenwraith/gunplay/data"
	"github.com/lixenwraith/gunplay/item"
)

func main() {
	var weaponsPath, rarityPath string
	flag.StringVar(&weaponsPath, "weapons", "", "Weapon table YAML (embedded table when empty)")
	flag.StringVar(&rarityPath, "rarity", "", "Rarity table YAML (embedded table when empty)")
	flag.Parse()

	if err := run(os.Stdout, weaponsPath, rarityPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, weaponsPath, rarityPath string) error {
	weapons, err := loadWeapons(weaponsPath)
	if err != nil {
		return err
	}
	rarity, err := loadRarity(rarityPath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tAMMO\tMAG\tRATE\tAUTO\tFIRE\tRELOAD")
	for _, wt := range weapons.Types() {
		def, _ := weapons.Get(wt)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s\t%t\t%s\t%s\n",
			wt, def.Name, def.AmmoType, def.Ammo, def.MagazineCapacity,
			def.FireRate, def.Automatic, def.FireSound, def.ReloadSection)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "RARITY\tSTARS\tSTENCIL\tGLOW")
	for r := item.RarityDamaged; r < item.RarityCount; r++ {
		def, ok := rarity.Get(r)
		if !ok {
			continue
		}
		g := def.GlowColor
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f %.2f %.2f\n", r, def.Stars, def.CustomDepthStencil, g.R, g.G, g.B)
	}
	return tw.Flush()
}

func loadWeapons(path string) (*data.WeaponTable, error) {
	if path == "" {
		return data.DefaultWeaponTable()
	}
	return data.LoadWeaponTable(path)
}

func loadRarity(path string) (*data.RarityTable, error) {
	if path == "" {
		return data.DefaultRarityTable()
	}
	return data.LoadRarityTable(path)
}

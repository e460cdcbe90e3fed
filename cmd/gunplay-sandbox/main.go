// gunplay-sandbox drives one character through weapon pickup, firing and
// reloading in a top-down terminal arena
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunplay/audio"
	"github.com/lixenwraith/gunplay/config"
	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/data"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/status"
)

func main() {
	var (
		configPath  string
		weaponsPath string
		rarityPath  string
		debug       bool
		seed        uint64
		items       int
	)

	flag.StringVar(&configPath, "config", "", "TOML config file (defaults when empty)")
	flag.StringVar(&weaponsPath, "weapons", "", "Weapon table YAML (overrides config)")
	flag.StringVar(&rarityPath, "rarity", "", "Rarity table YAML (overrides config)")
	flag.BoolVar(&debug, "debug", false, "Write a debug log to "+logDir)
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 uses the config seed, then the clock)")
	flag.IntVar(&items, "items", 12, "Items scattered at start")
	flag.Parse()

	logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.ApplyEnv()

	tables, err := loadTables(cfg, weaponsPath, rarityPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if seed == 0 {
		seed = cfg.Loop.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("sandbox: seed %d", seed)

	reg := status.NewRegistry()
	player := newPlayer(cfg, reg)
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	sb := newSandbox(cfg, tables, player, reg, seed)
	sb.screen = screen
	sb.spawnStart(items)

	loop := engine.NewLoop(sb.timers, cfg.Loop.TickInterval, nil, sb.frame, reg)
	sb.loop = loop
	loop.Start()

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !loop.Post(func() { sb.handleEvent(ev) }) {
				log.Printf("sandbox: input dropped")
			}
		}
	})

	<-sb.quit
	loop.Stop()
	log.Printf("sandbox: %d ticks, %d shots", loop.TickCount(), sb.fx.shots)
}

// loadTables resolves each table from the flag, then the config, then the embedded copy
func loadTables(cfg *config.Config, weaponsPath, rarityPath string) (Tables, error) {
	if weaponsPath == "" {
		weaponsPath = cfg.Data.WeaponTable
	}
	if rarityPath == "" {
		rarityPath = cfg.Data.RarityTable
	}

	var (
		weapons *data.WeaponTable
		rarity  *data.RarityTable
		err     error
	)
	if weaponsPath != "" {
		weapons, err = data.LoadWeaponTable(weaponsPath)
	} else {
		weapons, err = data.DefaultWeaponTable()
	}
	if err != nil {
		return Tables{}, err
	}
	if rarityPath != "" {
		rarity, err = data.LoadRarityTable(rarityPath)
	} else {
		rarity, err = data.DefaultRarityTable()
	}
	if err != nil {
		return Tables{}, err
	}

	log.Printf("sandbox: %d weapon rows, %d rarity rows", weapons.Len(), rarity.Len())
	return Tables{Weapons: weapons, Rarities: rarity, Types: weapons.Types()}, nil
}

// newPlayer builds the audio player; a failed device leaves the sandbox silent
func newPlayer(cfg *config.Config, reg *status.Registry) *audio.Player {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.MasterVolume
	ac.SampleRate = cfg.Audio.SampleRate
	ac.ApplyEnv()

	player := audio.NewPlayer(ac, reg)
	if ac.Enabled {
		if err := player.Start(); err != nil {
			log.Printf("sandbox: audio disabled: %v", err)
		}
	}
	return player
}

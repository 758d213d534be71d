package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/config"
	"github.com/milk9111/encounter/ecs/system"
	"github.com/milk9111/encounter/encounter"
	"github.com/milk9111/encounter/logging"
	"github.com/milk9111/encounter/sound"
)

func main() {
	configPath := flag.String("config", "", "path to an encounter config file (yaml)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "log sound cues instead of playing them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := logging.New(os.Stderr, "info", true)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Console)

	var sounds system.Sounds
	if !*mute {
		sounds = sound.NewBoard(audio.NewContext(int(sound.SampleRate)), 0.5, log)
	}

	session, err := encounter.NewSession(cfg, sounds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}
	defer session.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("encounter")

	game := NewGame(session, session.Encounter.Logger())
	session.Start()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Error().Err(err).Msg("game stopped")
		session.Close()
		os.Exit(1)
	}
}

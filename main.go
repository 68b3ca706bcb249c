package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelrig/settings"
	"github.com/quasilyte/gdata/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	width := flag.Int("width", 0, "initial window width (default: last session, else 1280)")
	height := flag.Int("height", 0, "initial window height (default: last session, else 720)")
	flag.Parse()

	storage, err := gdata.Open(gdata.Config{AppName: "pixelrig"})
	if err != nil {
		log.Printf("settings storage unavailable: %v", err)
		storage = nil
	}
	prefs := settings.NewManager(storage)

	winW, winH := 1280, 720
	if s := prefs.Settings(); s.WindowWidth > 0 && s.WindowHeight > 0 {
		winW, winH = s.WindowWidth, s.WindowHeight
	}
	if *width > 0 && *height > 0 {
		winW, winH = *width, *height
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle("pixelrig")

	deviceScale := 1.0
	if monitor := ebiten.Monitor(); monitor != nil {
		deviceScale = monitor.DeviceScaleFactor()
	}

	game, err := NewGame(GameConfig{
		Debug:       *debug,
		Watch:       *watch,
		Width:       winW,
		Height:      winH,
		DeviceScale: deviceScale,
		Settings:    prefs,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}

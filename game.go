package main

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/entity"
	"github.com/milk9111/pixelrig/ecs/resource"
	"github.com/milk9111/pixelrig/ecs/system"
	"github.com/milk9111/pixelrig/pixel"
	"github.com/milk9111/pixelrig/prefabs"
	"github.com/milk9111/pixelrig/settings"
)

// GameConfig carries the logical window size. DeviceScale converts it to
// physical pixels; zero means 1.
type GameConfig struct {
	Debug       bool
	Watch       bool
	Width       int
	Height      int
	DeviceScale float64
	Settings    *settings.Manager
}

type Game struct {
	world      *ecs.World
	scheduler  *ecs.Scheduler
	resize     *system.WindowResizeSystem
	physics    *system.PhysicsSystem
	render     *system.RenderSystem
	compositor *pixel.Compositor

	time     *resource.Time
	window   *resource.Window
	player   *resource.PlayerData
	observed *resource.CameraObserved
	lighting *resource.Lighting

	settings *settings.Manager
	watcher  *prefabs.Watcher
	pause    *PauseMenu

	paused bool
	debug  bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	if cfg.Settings == nil {
		cfg.Settings = settings.NewManager(nil)
	}

	displaySpec, err := prefabs.LoadDisplaySpec()
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	rigSpec, err := prefabs.LoadCameraRigSpec()
	if err != nil {
		return nil, err
	}
	rig, err := rigSpec.Rig()
	if err != nil {
		return nil, fmt.Errorf("game: %s: %w", prefabs.CameraFile, err)
	}
	rig.Mode = cfg.Settings.InitialCameraMode(rig.Mode)

	res, err := pixel.NewResolution(displaySpec.Resolution.Width, displaySpec.Resolution.Height)
	if err != nil {
		return nil, fmt.Errorf("game: %s: %w", prefabs.DisplayFile, err)
	}
	compositor, err := pixel.NewCompositor(res)
	if err != nil {
		return nil, err
	}
	if displaySpec.SceneClear != nil {
		compositor.SceneClear = displaySpec.SceneClear.Color
	}
	if displaySpec.DisplayClear != nil {
		compositor.DisplayClear = displaySpec.DisplayClear.Color
	}

	g := &Game{
		world:      ecs.NewWorld(),
		compositor: compositor,
		time:       &resource.Time{},
		window:     initialWindow(cfg),
		player:     resource.NewPlayerData(playerSpec.Speed),
		observed:   &resource.CameraObserved{},
		lighting:   lightingFromSpec(displaySpec.Lighting),
		settings:   cfg.Settings,
		debug:      cfg.Debug,
	}

	if err := compositor.Initialize(g.world, g.window); err != nil {
		return nil, err
	}
	if _, err := entity.NewGround(g.world, displaySpec.Ground); err != nil {
		return nil, err
	}
	playerEntity, err := entity.NewPlayer(g.world, playerSpec)
	if err != nil {
		return nil, err
	}
	playerPos := playerSpec.Transform.Vec3()
	g.player.PlayerPosition = playerPos
	start := playerPos.Add(component.YawRotation(rig.Angle).Rotate(mgl64.Vec3{0, rig.Offset.Y(), -rig.Offset.Z()}))
	if err := entity.AttachCameraRig(g.world, compositor.Roles().SceneCamera, rig, start, playerPos); err != nil {
		return nil, err
	}
	g.observed.Owner = compositor.Roles().SceneCamera
	log.Printf("Game: player %v, camera mode %s", playerEntity, rig.Mode)

	var changes <-chan string
	if cfg.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
			changes = watcher.Events
		}
	}

	g.resize = system.NewWindowResizeSystem(compositor, g.window)
	g.physics = system.NewPhysicsSystem(g.time)
	g.render = system.NewRenderSystem(g.lighting)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewCameraModeSystem(),
		system.NewPlayerControllerSystem(g.player, g.time),
		g.physics,
		system.NewPlayerDataSyncSystem(g.player),
		system.NewCameraDesiredPositionSystem(g.player),
		system.NewCameraOffsetSystem(g.player),
		system.NewCameraPlacementSystem(g.player, g.observed, g.time),
		system.NewTransformPropagationSystem(),
		g.resize,
	)
	if changes != nil {
		g.scheduler.Add(system.NewPrefabReloadSystem(changes, g.player))
	}

	g.pause = NewPauseMenu(
		func() { g.paused = false },
		func() { system.ShiftCameraMode(g.world, true) },
		func() { system.ShiftCameraMode(g.world, false) },
	)
	g.pause.SetMode(rig.Mode)

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pause.Update()
		g.resize.Update(g.world)
	} else {
		g.time.Delta = 1.0 / float64(ebiten.TPS())
		g.scheduler.Update(g.world)
	}

	g.handleModeChanges()
	g.logWatcherErrors()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  scale: %.3f  speed: %.2f/%.2f  jump: %d",
			ebiten.ActualFPS(), g.compositor.Scale(),
			g.player.PlayerCurrentSpeed, g.player.PlayerMaxSpeed, g.player.JumpStage,
		))
		system.DrawPhysicsMinimap(g.physics.Space(), g.observed, screen)
	}

	if g.paused {
		g.pause.Draw(screen)
	}
}

// LayoutF renders at the window's physical pixel size and reports size
// changes as window_resized events.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	width, height := physicalSize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	if width != g.window.Width || height != g.window.Height {
		g.world.Events().Push(ecs.Event{
			Type: ecs.EventWindowResized,
			Data: ecs.WindowResized{Width: width, Height: height},
		})
		g.settings.SetWindowSize(int(outsideWidth), int(outsideHeight))
	}
	return float64(width), float64(height)
}

func physicalSize(width, height, factor float64) (int, int) {
	if factor <= 0 {
		factor = 1
	}
	return int(math.Ceil(width * factor)), int(math.Ceil(height * factor))
}

func initialWindow(cfg GameConfig) *resource.Window {
	width, height := physicalSize(float64(cfg.Width), float64(cfg.Height), cfg.DeviceScale)
	return &resource.Window{Width: width, Height: height}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close persists settings and stops the prefab watcher.
func (g *Game) Close() {
	if err := g.settings.Save(); err != nil {
		log.Printf("Game: %v", err)
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
	}
}

func (g *Game) handleModeChanges() {
	for _, evt := range g.world.Events().Drain(ecs.EventCameraModeChanged) {
		changed, ok := evt.Data.(ecs.CameraModeChanged)
		if !ok {
			continue
		}
		mode, err := component.ParseCameraMode(changed.Mode)
		if err != nil {
			continue
		}
		g.settings.SetCameraMode(mode)
		g.pause.SetMode(mode)
	}
}

func lightingFromSpec(spec prefabs.LightingSpec) *resource.Lighting {
	return &resource.Lighting{
		AmbientColor:      spec.AmbientColor.RGBAOr(component.WhiteRGBA),
		AmbientBrightness: spec.AmbientBrightness,
		DirectionalColor:  spec.DirectionalColor.RGBAOr(component.WhiteRGBA),
		DirectionalDir:    spec.DirectionalDirection.Vec3(),
		DirectionalLux:    spec.DirectionalIlluminance,
	}
}

func (g *Game) logWatcherErrors() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Game: prefab watcher: %v", err)
		}
	default:
	}
}

package system

import (
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/resource"
	"github.com/milk9111/pixelrig/pixel"
)

// WindowResizeSystem drains window_resized events once per frame and keeps
// the display camera's scale in step with the window. Events are applied in
// arrival order, so the last one in a frame decides the scale.
type WindowResizeSystem struct {
	compositor *pixel.Compositor
	window     *resource.Window
}

func NewWindowResizeSystem(compositor *pixel.Compositor, window *resource.Window) *WindowResizeSystem {
	return &WindowResizeSystem{compositor: compositor, window: window}
}

func (s *WindowResizeSystem) Update(w *ecs.World) {
	events := w.Events().Drain(ecs.EventWindowResized)
	if len(events) == 0 {
		return
	}
	if s.window == nil {
		panic("window resize system: no primary window")
	}
	for _, evt := range events {
		size, ok := evt.Data.(ecs.WindowResized)
		if !ok {
			continue
		}
		s.window.Width, s.window.Height = size.Width, size.Height
		s.compositor.OnWindowResized(w, size.Width, size.Height)
	}
}

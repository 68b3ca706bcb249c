package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a flat image drawn by orthographic cameras, centred on the
// entity's global translation. Width and Height are in world units.
type Sprite struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()

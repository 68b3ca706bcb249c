package component

const (
	LayerScene uint32 = 1 << iota
	LayerDisplay
)

// RenderLayers is a visibility mask. Entities without one are on LayerScene.
type RenderLayers struct {
	Mask uint32
}

var RenderLayersComponent = NewComponent[RenderLayers]()

func (l RenderLayers) Intersects(other RenderLayers) bool {
	return l.Mask&other.Mask != 0
}

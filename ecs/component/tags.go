package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SceneCameraTag marks the camera that renders the 3D world offscreen.
type SceneCameraTag struct{}

var SceneCameraTagComponent = NewComponent[SceneCameraTag]()

// DisplayCameraTag marks the orthographic camera that shows the canvas.
type DisplayCameraTag struct{}

var DisplayCameraTagComponent = NewComponent[DisplayCameraTag]()

// CanvasTag marks the full-screen quad sampling the offscreen buffer.
type CanvasTag struct{}

var CanvasTagComponent = NewComponent[CanvasTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

package component

// Player holds the movement tunables loaded from player.yaml. SpeedRamp is how
// fast the current speed moves between base and sprint speed, per second.
type Player struct {
	BaseSpeed float64
	SpeedRamp float64
	JumpSpeed float64
	MaxJumps  int
}

var PlayerComponent = NewComponent[Player]()

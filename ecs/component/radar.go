package component

const (
	RadarEnemy   = "enemy"
	RadarShot    = "shot"
	RadarPlayer  = "player"
	RadarObelisk = "obelisk"
)

// RadarBlip classifies an entity for minimap displays.
type RadarBlip struct {
	Type string
}

var RadarBlipComponent = NewComponent[RadarBlip]()

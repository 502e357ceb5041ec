package anim

// Direction is one of the four fixed sprite facings used for directional
// roles. The enumeration order is the sheet emission order.
type Direction int

const (
	// None marks a non-directional rendering unit.
	None Direction = iota - 1
	Down
	Left
	Up
	Right
)

// Directions lists the four facings in emission order.
var Directions = [4]Direction{Down, Left, Up, Right}

var directionNames = [4]string{"down", "left", "up", "right"}

// String returns the lowercase facing name used in metadata keys.
func (d Direction) String() string {
	if d < Down || d > Right {
		return "none"
	}
	return directionNames[d]
}

// RotationDeg returns the clockwise yaw rotation, in degrees, applied to
// the rig for this facing: down 0, left 90, up 180, right 270. Down faces
// the camera.
func (d Direction) RotationDeg() float64 {
	if d < Down || d > Right {
		return 0
	}
	return float64(d) * 90
}

package physics

const (
	DefaultPitchLength = 105.0
	DefaultPitchWidth  = 68.0
	DefaultGoalWidth   = 7.32
	DefaultGoalHeight  = 2.44
)

// Pitch is the field geometry, centred on the origin.
type Pitch struct {
	Length     float64 `yaml:"length"`
	Width      float64 `yaml:"width"`
	GoalWidth  float64 `yaml:"goal_width"`
	GoalHeight float64 `yaml:"goal_height"`
}

func DefaultPitch() Pitch {
	return Pitch{
		Length:     DefaultPitchLength,
		Width:      DefaultPitchWidth,
		GoalWidth:  DefaultGoalWidth,
		GoalHeight: DefaultGoalHeight,
	}
}

// GoalLine is the x coordinate of the attacked goal line.
func (p Pitch) GoalLine() float64 { return p.Length / 2 }

// Posts returns the y coordinates of the left and right goal posts.
func (p Pitch) Posts() (left, right float64) {
	return -p.GoalWidth / 2, p.GoalWidth / 2
}

// FromNormalised maps [0,1] tracking coordinates to metres from the centre spot.
func (p Pitch) FromNormalised(xn, yn float64) (x, y float64) {
	return xn*p.Length - p.Length/2, yn*p.Width - p.Width/2
}

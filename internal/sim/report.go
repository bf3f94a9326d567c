package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/pitchlab/internal/physics"
)

type Verdict int

const (
	Weak Verdict = iota
	Good
	Over
)

func (v Verdict) String() string {
	switch v {
	case Weak:
		return "WEAK"
	case Good:
		return "GOOD"
	case Over:
		return "OVER"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Describe returns a one-line explanation of the verdict.
func (v Verdict) Describe() string {
	switch v {
	case Good:
		return "under the bar"
	case Over:
		return "went above the bar"
	default:
		return "hit the ground before goal"
	}
}

// Report summarises a finished shot. The goal-line fields are only
// meaningful when Crossed is true.
type Report struct {
	Verdict      Verdict
	Crossed      bool
	Time         float64
	GoalLineY    float64
	LeftPostGap  float64
	RightPostGap float64
	CrossbarGap  float64
	Apex         float64
	Steps        int
}

// Analyze classifies a result. Heights are compared using the ball centre;
// Apex is reported above ground level.
func Analyze(res *Result, pitch physics.Pitch, radius float64) Report {
	r := Report{Verdict: Weak, Time: res.Duration(), Steps: res.StepsTaken}

	for _, x := range res.States {
		r.Apex = math.Max(r.Apex, x[physics.Z]-radius)
	}

	final := res.Final()
	if final == nil || res.Phase != PastGoalLine {
		return r
	}

	r.Crossed = true
	if final[physics.Z] <= pitch.GoalHeight {
		r.Verdict = Good
	} else {
		r.Verdict = Over
	}

	left, right := pitch.Posts()
	r.GoalLineY = final[physics.Y]
	r.LeftPostGap = math.Abs(final[physics.Y] - left)
	r.RightPostGap = math.Abs(final[physics.Y] - right)
	r.CrossbarGap = math.Abs(final[physics.Z] - pitch.GoalHeight)
	return r
}

// LogValue implements slog.LogValuer for structured logging.
func (r Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("verdict", r.Verdict.String()),
		slog.Float64("time", r.Time),
		slog.Int("steps", r.Steps),
		slog.Float64("apex", r.Apex),
	}
	if r.Crossed {
		attrs = append(attrs,
			slog.Float64("goal_line_y", r.GoalLineY),
			slog.Float64("crossbar_gap", r.CrossbarGap),
		)
	}
	return slog.GroupValue(attrs...)
}

package sim_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/integrators"
	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/sim"
)

type nanSystem struct{}

func (nanSystem) StateDim() int { return physics.StateDim }
func (nanSystem) Derive(t float64, x dynamo.State) dynamo.State {
	return dynamo.State{math.NaN(), 0, 0, 0, 0, 0}
}

var _ = Describe("Simulator", func() {
	var (
		pitch physics.Pitch
		force physics.ForceConfig
		cfg   sim.Config
		x0    float64
	)

	newSim := func() *sim.Simulator {
		return sim.New(physics.NewBall(force), integrators.NewRK4(), pitch, force.Radius)
	}

	BeforeEach(func() {
		pitch = physics.DefaultPitch()
		force = physics.DefaultForceConfig()
		cfg = sim.DefaultConfig()
		x0 = pitch.GoalLine() - 20
	})

	Describe("gravity only", func() {
		It("follows the closed-form parabola", func() {
			y0 := sim.Launch(25, 20, x0, 3, force.Radius)
			res, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())

			for i, x := range res.States {
				t := res.Times[i]
				Expect(x[physics.X]).To(BeNumerically("~", y0[physics.X]+y0[physics.VX]*t, 1e-9))
				Expect(x[physics.Y]).To(BeNumerically("~", 3.0, 1e-12))
				Expect(x[physics.Z]).To(BeNumerically("~", y0[physics.Z]+y0[physics.VZ]*t-0.5*force.Gravity*t*t, 1e-9))
				Expect(x[physics.VZ]).To(BeNumerically("~", y0[physics.VZ]-force.Gravity*t, 1e-9))
			}
		})

		It("crosses the goal line from 20 m at 25 m/s and 20 degrees", func() {
			y0 := sim.Launch(25, 20, x0, 3, force.Radius)
			res, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Phase).To(Equal(sim.PastGoalLine))
			Expect(res.StepsTaken).To(BeNumerically(">", 0))
			Expect(res.StepsTaken).To(BeNumerically("<", 200))
			Expect(res.Final()[physics.X]).To(BeNumerically(">=", pitch.GoalLine()))

			report := sim.Analyze(res, pitch, force.Radius)
			Expect(report.Verdict).To(Equal(sim.Over))
			Expect(report.Crossed).To(BeTrue())
			Expect(report.GoalLineY).To(BeNumerically("~", 3.0, 1e-12))
			Expect(report.LeftPostGap).To(BeNumerically("~", 3+pitch.GoalWidth/2, 1e-12))
			Expect(report.RightPostGap).To(BeNumerically("~", pitch.GoalWidth/2-3, 1e-12))
		})

		It("does not tunnel far below the ground", func() {
			y0 := sim.Launch(10, 20, x0, 0, force.Radius)
			res, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Phase).To(Equal(sim.Grounded))

			overshoot := math.Abs(res.Final()[physics.VZ]) * cfg.Dt
			for _, x := range res.States {
				Expect(x[physics.Z]).To(BeNumerically(">=", force.Radius-overshoot))
			}
			Expect(sim.Analyze(res, pitch, force.Radius).Verdict).To(Equal(sim.Weak))
		})

		It("scores under the bar with a flatter kick", func() {
			y0 := sim.Launch(25, 10, x0, 0, force.Radius)
			res, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())

			report := sim.Analyze(res, pitch, force.Radius)
			Expect(report.Verdict).To(Equal(sim.Good))
			Expect(report.Time).To(BeNumerically("~", 20/y0[physics.VX], cfg.Dt))
		})

		It("conserves mechanical energy", func() {
			ball := physics.NewBall(force)
			s := sim.New(ball, integrators.NewRK4(), pitch, force.Radius)
			y0 := sim.Launch(18, 35, x0, 0, force.Radius)

			res, err := s.Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(ball.Energy(res.Final())).To(BeNumerically("~", ball.Energy(y0), 1e-6))
		})
	})

	Describe("drag and Magnus", func() {
		It("shortens the range when drag is enabled", func() {
			y0 := sim.Launch(14, 30, x0, 0, force.Radius)

			free, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())

			force.Drag = true
			dragged, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(free.Phase).To(Equal(sim.Grounded))
			Expect(dragged.Phase).To(Equal(sim.Grounded))
			Expect(dragged.Final()[physics.X]).To(BeNumerically("<", free.Final()[physics.X]))
		})

		It("curls the ball sideways with positive z spin", func() {
			force.Magnus = true
			y0 := sim.Launch(25, 15, x0, 0, force.Radius)

			res, err := newSim().Run(context.Background(), y0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Final()[physics.Y]).To(BeNumerically("<", 0))
		})
	})

	Describe("run control", func() {
		It("notifies observers for every recorded state", func() {
			s := newSim()
			var times []float64
			var last sim.Phase
			s.AddObserver(sim.ObserverFunc(func(t float64, x dynamo.State, phase sim.Phase) {
				times = append(times, t)
				last = phase
			}))

			res, err := s.Run(context.Background(), sim.Launch(25, 20, x0, 0, force.Radius), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(times).To(Equal(res.Times))
			Expect(last).To(Equal(res.Phase))
		})

		It("stops at the step limit with a partial result", func() {
			cfg.MaxSteps = 5
			res, err := newSim().Run(context.Background(), sim.Launch(25, 20, x0, 0, force.Radius), cfg)
			Expect(errors.Is(err, dynamo.ErrStepLimit)).To(BeTrue())
			Expect(res.StepsTaken).To(Equal(5))
			Expect(res.States).To(HaveLen(6))
			Expect(res.Phase).To(Equal(sim.Flying))
		})

		It("honours context cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			res, err := newSim().Run(ctx, sim.Launch(25, 20, x0, 0, force.Radius), cfg)
			Expect(err).To(MatchError(context.Canceled))
			Expect(res.States).To(HaveLen(1))
		})

		It("rejects a state of the wrong dimension", func() {
			_, err := newSim().Run(context.Background(), dynamo.State{0, 0, 1}, cfg)
			Expect(errors.Is(err, dynamo.ErrDimensionMismatch)).To(BeTrue())
		})

		It("rejects a non-positive time step", func() {
			cfg.Dt = 0
			_, err := newSim().Run(context.Background(), sim.Launch(25, 20, x0, 0, force.Radius), cfg)
			Expect(err).To(HaveOccurred())
		})

		It("reports invalid states with step context", func() {
			s := sim.New(nanSystem{}, integrators.NewRK4(), pitch, force.Radius)
			_, err := s.Run(context.Background(), sim.Launch(25, 20, x0, 0, force.Radius), cfg)

			var simErr *dynamo.SimulationError
			Expect(errors.As(err, &simErr)).To(BeTrue())
			Expect(simErr.Step).To(Equal(0))
			Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())
		})
	})

	Describe("PhaseOf", func() {
		It("prefers the goal line over ground contact", func() {
			s := newSim()
			Expect(s.PhaseOf(dynamo.State{pitch.GoalLine(), 0, force.Radius, 0, 0, 0})).To(Equal(sim.PastGoalLine))
			Expect(s.PhaseOf(dynamo.State{0, 0, force.Radius, 0, 0, 0})).To(Equal(sim.Grounded))
			Expect(s.PhaseOf(dynamo.State{0, 0, 1, 0, 0, 0})).To(Equal(sim.Flying))
		})
	})
})

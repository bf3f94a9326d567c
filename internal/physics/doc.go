// Package physics provides the ball flight model and pitch geometry.
//
// [Ball] implements [dynamo.System] for the six-component state
// (x, y, z, vx, vy, vz): gravity is always applied, quadratic drag and
// Magnus lift are switched on by [ForceConfig]:
//
//	ball := physics.NewBall(physics.DefaultForceConfig())
//	next := integrators.NewRK4().Step(ball.Derive, t, state, dt)
//
// Coordinates are centred on the pitch: x runs towards the goal, y across
// the pitch and z upwards. The ball centre sits at z = Radius on the ground.
package physics

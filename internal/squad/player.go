// Package squad models players and teams with averaged ability ratings.
package squad

import "fmt"

// Skills are ratings on a 0-100 scale.
type Skills struct {
	Speed     int `yaml:"speed"`
	Stamina   int `yaml:"stamina"`
	Jumping   int `yaml:"jumping"`
	Shooting  int `yaml:"shooting"`
	Passing   int `yaml:"passing"`
	Dribbling int `yaml:"dribbling"`
	Tackling  int `yaml:"tackling"`
	Marking   int `yaml:"marking"`
	Strength  int `yaml:"strength"`
}

func (s Skills) Validate() error {
	for name, v := range map[string]int{
		"speed": s.Speed, "stamina": s.Stamina, "jumping": s.Jumping,
		"shooting": s.Shooting, "passing": s.Passing, "dribbling": s.Dribbling,
		"tackling": s.Tackling, "marking": s.Marking, "strength": s.Strength,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s rating %d outside 0-100", name, v)
		}
	}
	return nil
}

// Player has a fixed identity and mutable attributes.
type Player struct {
	name   string
	number int

	Height     int
	Weight     int
	LeftFooted bool
	Skills     Skills

	// Position and velocity on the pitch, metres and m/s.
	Pos [2]float64
	Vel [2]float64
}

func NewPlayer(name string, number int) *Player {
	return &Player{name: name, number: number}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Number() int  { return p.number }

func (p *Player) Physical() int {
	return (p.Skills.Speed + p.Skills.Stamina + p.Skills.Jumping) / 3
}

func (p *Player) Offence() int {
	return (p.Skills.Shooting + p.Skills.Passing + p.Skills.Dribbling) / 3
}

func (p *Player) Defence() int {
	return (p.Skills.Marking + p.Skills.Tackling + p.Skills.Strength) / 3
}

// Move advances the position by the current velocity over dt seconds.
func (p *Player) Move(dt float64) {
	p.Pos[0] += p.Vel[0] * dt
	p.Pos[1] += p.Vel[1] * dt
}

func (p *Player) SetVelocity(vx, vy float64) {
	p.Vel = [2]float64{vx, vy}
}

func (p *Player) String() string {
	return fmt.Sprintf("%d : %s", p.number, p.name)
}

package squad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Team struct {
	Name    string
	Colour  string
	players []*Player
}

func NewTeam(name, colour string, players ...*Player) *Team {
	return &Team{Name: name, Colour: colour, players: append([]*Player(nil), players...)}
}

// Add puts the player at the front of the roster.
func (t *Team) Add(p *Player) {
	t.players = append([]*Player{p}, t.players...)
}

// Players returns a copy of the roster slice.
func (t *Team) Players() []*Player {
	return append([]*Player(nil), t.players...)
}

func (t *Team) Len() int { return len(t.players) }

func (t *Team) Physical() int { return t.mean((*Player).Physical) }
func (t *Team) Offence() int  { return t.mean((*Player).Offence) }
func (t *Team) Defence() int  { return t.mean((*Player).Defence) }

// mean is the integer mean of a per-player ability, 0 for an empty roster.
func (t *Team) mean(ability func(*Player) int) int {
	if len(t.players) == 0 {
		return 0
	}
	total := 0
	for _, p := range t.players {
		total += ability(p)
	}
	return total / len(t.players)
}

type rosterFile struct {
	Name    string        `yaml:"name"`
	Colour  string        `yaml:"colour"`
	Players []rosterEntry `yaml:"players"`
}

type rosterEntry struct {
	Name       string `yaml:"name"`
	Number     int    `yaml:"number"`
	Height     int    `yaml:"height"`
	Weight     int    `yaml:"weight"`
	LeftFooted bool   `yaml:"left_footed"`
	Skills     Skills `yaml:"skills"`
}

// ParseRoster decodes a YAML team description. Players are added in file
// order, so the last listed player ends up first in the roster.
func ParseRoster(data []byte) (*Team, error) {
	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	team := NewTeam(rf.Name, rf.Colour)
	for _, e := range rf.Players {
		if err := e.Skills.Validate(); err != nil {
			return nil, fmt.Errorf("player %q: %w", e.Name, err)
		}
		p := NewPlayer(e.Name, e.Number)
		p.Height, p.Weight, p.LeftFooted = e.Height, e.Weight, e.LeftFooted
		p.Skills = e.Skills
		team.Add(p)
	}
	return team, nil
}

func LoadRoster(path string) (*Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRoster(data)
}

// DemoTeam is a two-player squad used when no roster file is given.
func DemoTeam() *Team {
	a := NewPlayer("Alex Morgan", 13)
	a.Skills = Skills{Speed: 85, Stamina: 90, Jumping: 80, Shooting: 88, Passing: 92, Dribbling: 87, Tackling: 40, Marking: 45, Strength: 60}

	b := NewPlayer("Leah Williamson", 6)
	b.Skills = Skills{Speed: 70, Stamina: 75, Jumping: 72, Shooting: 65, Passing: 68, Dribbling: 70, Tackling: 80, Marking: 85, Strength: 90}

	team := NewTeam("The Invincibles", "Red")
	team.Add(a)
	team.Add(b)
	return team
}

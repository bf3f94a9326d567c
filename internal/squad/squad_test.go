package squad

import "testing"

func TestPlayerAbilities(t *testing.T) {
	p := NewPlayer("Alex Morgan", 13)
	p.Skills = Skills{Speed: 85, Stamina: 90, Jumping: 80, Shooting: 88, Passing: 92, Dribbling: 87, Tackling: 40, Marking: 45, Strength: 60}

	if got := p.Physical(); got != 85 {
		t.Errorf("Physical() = %d, want 85", got)
	}
	if got := p.Offence(); got != 89 {
		t.Errorf("Offence() = %d, want 89", got)
	}
	if got := p.Defence(); got != 48 {
		t.Errorf("Defence() = %d, want 48", got)
	}
	if p.Name() != "Alex Morgan" || p.Number() != 13 {
		t.Errorf("unexpected identity %s", p)
	}
}

func TestPlayerMove(t *testing.T) {
	p := NewPlayer("x", 1)
	p.SetVelocity(2, -1)
	p.Move(0.5)
	if p.Pos != [2]float64{1, -0.5} {
		t.Errorf("Pos = %v, want [1 -0.5]", p.Pos)
	}
}

func TestTeamAbilities(t *testing.T) {
	team := DemoTeam()

	if team.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", team.Len())
	}
	// Added players go to the front.
	if team.Players()[0].Name() != "Leah Williamson" {
		t.Errorf("unexpected roster order: %v", team.Players())
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"physical", team.Physical(), (85 + 72) / 2},
		{"offence", team.Offence(), (89 + 67) / 2},
		{"defence", team.Defence(), (48 + 85) / 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestEmptyTeam(t *testing.T) {
	team := NewTeam("Empty", "White")
	if team.Physical() != 0 || team.Offence() != 0 || team.Defence() != 0 {
		t.Error("expected zero abilities for an empty team")
	}
}

func TestPlayersCopy(t *testing.T) {
	team := DemoTeam()
	players := team.Players()
	players[0] = nil
	if team.Players()[0] == nil {
		t.Error("Players() exposes internal slice")
	}
}

func TestParseRoster(t *testing.T) {
	data := []byte(`
name: Rovers
colour: Blue
players:
  - name: Keeper
    number: 1
    skills: {speed: 50, stamina: 60, jumping: 70}
  - name: Striker
    number: 9
    left_footed: true
    skills: {shooting: 90, passing: 70, dribbling: 80}
`)
	team, err := ParseRoster(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if team.Name != "Rovers" || team.Colour != "Blue" || team.Len() != 2 {
		t.Fatalf("unexpected team %+v", team)
	}
	first := team.Players()[0]
	if first.Name() != "Striker" || !first.LeftFooted || first.Offence() != 80 {
		t.Errorf("unexpected first player %s offence %d", first, first.Offence())
	}

	if _, err := ParseRoster([]byte("players:\n  - name: Bad\n    skills: {speed: 140}\n")); err == nil {
		t.Error("expected error for rating above 100")
	}
}

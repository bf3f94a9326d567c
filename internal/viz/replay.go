package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/storage"
)

type TickMsg time.Time

// Replay steps through a stored trajectory, drawing a top-down view of the
// attacking half next to a side elevation.
type Replay struct {
	rows   []storage.Row
	pitch  physics.Pitch
	title  string
	frame  int
	stride int
	paused bool

	top  *Canvas
	side *Canvas
}

// NewReplay builds a replay model. stride is the number of rows advanced
// per tick; values below 1 are treated as 1.
func NewReplay(title string, rows []storage.Row, pitch physics.Pitch, stride int) *Replay {
	if stride < 1 {
		stride = 1
	}
	r := &Replay{
		rows:   rows,
		pitch:  pitch,
		title:  title,
		stride: stride,
		top:    NewCanvas(40, 12),
		side:   NewCanvas(40, 8),
	}
	r.setBounds()
	return r
}

func (r *Replay) setBounds() {
	goal := r.pitch.GoalLine()
	minX, maxY, maxZ := goal-5, r.pitch.GoalWidth, r.pitch.GoalHeight
	for _, row := range r.rows {
		minX = math.Min(minX, row.X)
		maxY = math.Max(maxY, math.Abs(row.Y))
		maxZ = math.Max(maxZ, row.Z)
	}
	r.top.SetBounds(minX-1, goal+2, -maxY-1, maxY+1)
	r.side.SetBounds(minX-1, goal+2, 0, maxZ+0.5)
}

// Frame returns the index of the current row.
func (r *Replay) Frame() int { return r.frame }

// Done reports whether the replay reached the last row.
func (r *Replay) Done() bool { return len(r.rows) == 0 || r.frame >= len(r.rows)-1 }

func (r *Replay) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (r *Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return r, tea.Quit
		case " ":
			r.paused = !r.paused
		case "r":
			r.frame = 0
		case "]":
			if r.paused {
				r.advance(1)
			}
		case "[":
			if r.paused && r.frame > 0 {
				r.frame--
			}
		}
	case TickMsg:
		if !r.paused {
			r.advance(r.stride)
		}
		return r, tick()
	}
	return r, nil
}

func (r *Replay) advance(n int) {
	r.frame += n
	if last := len(r.rows) - 1; r.frame > last {
		r.frame = max(last, 0)
	}
}

func (r *Replay) draw() {
	r.top.Clear()
	r.side.Clear()

	goal := r.pitch.GoalLine()
	left, right := r.pitch.Posts()
	r.top.Line(goal, left, goal, right)
	r.side.Line(goal, 0, goal, r.pitch.GoalHeight)
	r.side.Line(r.top.minX, 0, goal+2, 0)

	if len(r.rows) == 0 {
		return
	}
	prev := r.rows[0]
	for _, row := range r.rows[1 : r.frame+1] {
		r.top.Line(prev.X, prev.Y, row.X, row.Y)
		r.side.Line(prev.X, prev.Z, row.X, row.Z)
		prev = row
	}
	r.top.Plot(prev.X, prev.Y)
	r.side.Plot(prev.X, prev.Z)
}

func (r *Replay) View() string {
	r.draw()

	views := lipgloss.JoinVertical(lipgloss.Left,
		Panel.Render(Subtle.Render("top")+"\n"+r.top.String()),
		Panel.Render(Subtle.Render("side")+"\n"+r.side.String()),
	)

	var stats strings.Builder
	stats.WriteString(Title.Render(strings.ToUpper(r.title)) + "\n\n")
	if len(r.rows) > 0 {
		row := r.rows[r.frame]
		speed := math.Sqrt(row.VX*row.VX + row.VY*row.VY + row.VZ*row.VZ)
		stats.WriteString(metric("t", fmt.Sprintf("%.3f s", row.T)))
		stats.WriteString(metric("x", fmt.Sprintf("%.2f m", row.X)))
		stats.WriteString(metric("y", fmt.Sprintf("%.2f m", row.Y)))
		stats.WriteString(metric("z", fmt.Sprintf("%.2f m", row.Z)))
		stats.WriteString(metric("speed", fmt.Sprintf("%.2f m/s", speed)))
		stats.WriteString("\n")
		frac := float64(r.frame) / float64(max(len(r.rows)-1, 1))
		stats.WriteString(ProgressBar(frac, 24) + "\n")
	}
	if r.paused {
		stats.WriteString("\n" + VerdictOver.Render("PAUSED") + "\n")
	}
	stats.WriteString("\n" + KeyHint.Render("[space] pause  [r] restart  [ ] step  [q] quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, views, Panel.Render(stats.String()))
}

// RunReplay runs the replay program until the user quits.
func RunReplay(r *Replay) error {
	p := tea.NewProgram(r, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

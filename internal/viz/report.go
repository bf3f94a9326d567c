package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pitchlab/internal/sim"
	"github.com/san-kum/pitchlab/internal/storage"
)

// RenderReport formats a shot report as a bordered panel.
func RenderReport(r sim.Report) string {
	var b strings.Builder
	b.WriteString(Title.Render("SHOT REPORT") + "\n\n")
	b.WriteString(metric("Verdict", verdictStyle(r.Verdict).Render(r.Verdict.String())))
	b.WriteString(Subtle.Render(r.Verdict.Describe()) + "\n\n")
	b.WriteString(metric("Flight time", fmt.Sprintf("%.3f s", r.Time)))
	b.WriteString(metric("Steps", fmt.Sprintf("%d", r.Steps)))
	b.WriteString(metric("Apex", fmt.Sprintf("%.3f m", r.Apex)))

	if r.Crossed {
		b.WriteString("\n")
		b.WriteString(metric("Goal line y", fmt.Sprintf("%.3f m", r.GoalLineY)))
		b.WriteString(metric("Left post distance", fmt.Sprintf("%.3f m", r.LeftPostGap)))
		b.WriteString(metric("Right post distance", fmt.Sprintf("%.3f m", r.RightPostGap)))
		b.WriteString(metric("Crossbar distance", fmt.Sprintf("%.3f m", r.CrossbarGap)))
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func verdictStyle(v sim.Verdict) Style {
	switch v {
	case sim.Good:
		return VerdictGood
	case sim.Over:
		return VerdictOver
	default:
		return VerdictWeak
	}
}

// PlotHeight plots ball height against step index.
func PlotHeight(rows []storage.Row, width, height int) string {
	zs := make([]float64, len(rows))
	for i, r := range rows {
		zs[i] = r.Z
	}
	return PlotSeries(zs, width, height, "height (m)")
}

// PlotSeries draws a single line plot. An empty series yields "".
func PlotSeries(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.Precision(2),
	)
}

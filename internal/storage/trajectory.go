package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/sim"
)

// Row is one integration step with z measured from the ground.
type Row struct {
	T  float64 `csv:"t" json:"t"`
	X  float64 `csv:"x" json:"x"`
	Y  float64 `csv:"y" json:"y"`
	Z  float64 `csv:"z" json:"z"`
	VX float64 `csv:"vx" json:"vx"`
	VY float64 `csv:"vy" json:"vy"`
	VZ float64 `csv:"vz" json:"vz"`
}

// Rows flattens a result, shifting z down by radius so ground level reads zero.
func Rows(res *sim.Result, radius float64) []Row {
	rows := make([]Row, len(res.States))
	for i, x := range res.States {
		rows[i] = Row{
			T:  res.Times[i],
			X:  x[physics.X],
			Y:  x[physics.Y],
			Z:  x[physics.Z] - radius,
			VX: x[physics.VX],
			VY: x[physics.VY],
			VZ: x[physics.VZ],
		}
	}
	return rows
}

// FileName names a trajectory after its launch speed and enabled forces,
// e.g. v25_drag_magnus.dat.
func FileName(speed float64, drag, magnus bool) string {
	return baseName(speed, drag, magnus) + ".dat"
}

func baseName(speed float64, drag, magnus bool) string {
	name := fmt.Sprintf("v%d", int(speed))
	if drag {
		name += "_drag"
	}
	if magnus {
		name += "_magnus"
	}
	return name
}

// WriteDat writes space-separated `t x y z vx vy vz` lines.
func WriteDat(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		line := []float64{r.T, r.X, r.Y, r.Z, r.VX, r.VY, r.VZ}
		for i, v := range line {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

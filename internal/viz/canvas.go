package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid addressed in world coordinates. The
// resolution in dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	minX, maxX float64
	minY, maxY float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		maxX:   1,
		maxY:   1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// SetBounds sets the world rectangle mapped onto the canvas. y grows upward.
func (c *Canvas) SetBounds(minX, maxX, minY, maxY float64) {
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}
	c.minX, c.maxX, c.minY, c.maxY = minX, maxX, minY, maxY
}

func (c *Canvas) project(x, y float64) (int, int) {
	px := (x - c.minX) / (c.maxX - c.minX) * float64(c.Width*2-1)
	py := (c.maxY - y) / (c.maxY - c.minY) * float64(c.Height*4-1)
	return int(px + 0.5), int(py + 0.5)
}

// Plot sets the dot nearest to world point (x, y). Points outside the
// bounds are dropped.
func (c *Canvas) Plot(x, y float64) {
	px, py := c.project(x, y)
	c.set(px, py)
}

// Line draws a straight segment between two world points.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	px0, py0 := c.project(x0, y0)
	px1, py1 := c.project(x1, y1)
	c.drawLine(px0, py0, px1, py1)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// drawLine uses Bresenham's algorithm in dot coordinates.
func (c *Canvas) drawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

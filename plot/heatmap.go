package plot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Heatmap draws a ligand by residue matrix of interaction counts with square cells,
// residues along x and a horizontal colour bar below.
func Heatmap(f *Figure, m *mat.Dense, ligands, residues []string) error {
	if m == nil {
		return fmt.Errorf("heatmap: empty matrix")
	}
	rows, cols := m.Dims()
	if rows != len(ligands) || cols != len(residues) {
		return fmt.Errorf("heatmap: matrix is %dx%d, got %d ligands and %d residues", rows, cols, len(ligands), len(residues))
	}

	max := mat.Max(m)

	f.setFont(tickFont, false)
	ligandW := f.maxWidth(ligands)
	residueW := f.maxWidth(residues)
	tickH := f.px(tickFont)
	labelH := f.px(labelFont)

	cbarGap := f.px(12)
	cbarH := f.px(14)
	cbarBlock := cbarGap + cbarH + f.px(tickLength) + tickH + f.px(4)

	left := f.px(margin) + labelH + f.px(8) + ligandW + f.px(tickLength) + f.px(4)
	right := f.px(margin) * 2
	top := f.px(margin) * 2
	bottom := f.px(margin) + cbarBlock + labelH + f.px(8) + residueW + f.px(tickLength) + f.px(4)

	availW := f.width() - left - right
	availH := f.height() - top - bottom
	cell := math.Min(availW/float64(cols), availH/float64(rows))
	if cell < 1 {
		cell = 1
	}
	gridW, gridH := cell*float64(cols), cell*float64(rows)
	x0 := left + math.Max(availW-gridW, 0)/2
	y0 := top + math.Max(availH-gridH, 0)/2

	dc := f.dc
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t := 0.0
			if max > 0 {
				t = m.At(i, j) / max
			}
			dc.SetColor(Blues(t))
			dc.DrawRectangle(x0+float64(j)*cell, y0+float64(i)*cell, cell, cell)
			dc.Fill()
		}
	}
	f.frame(x0, y0, gridW, gridH)

	// y axis: ligands
	f.setFont(tickFont, false)
	dc.SetColor(color.Black)
	for i, l := range ligands {
		y := y0 + (float64(i)+0.5)*cell
		f.line(x0-f.px(tickLength), y, x0, y, tickWidth)
		f.text(l, x0-f.px(tickLength)-f.px(4), y, 1, 0.5, 0)
	}

	// x axis: residues, rotated
	xTickBottom := y0 + gridH + f.px(tickLength) + f.px(4)
	for j, r := range residues {
		x := x0 + (float64(j)+0.5)*cell
		f.line(x, y0+gridH, x, y0+gridH+f.px(tickLength), tickWidth)
		f.text(r, x, xTickBottom, 1, 0.5, -90)
	}

	f.setFont(labelFont, true)
	xLabelTop := xTickBottom + residueW + f.px(8)
	f.text("Residue", x0+gridW/2, xLabelTop, 0.5, 1, 0)
	yLabelX := x0 - f.px(tickLength) - f.px(4) - ligandW - f.px(8) - labelH/2
	f.text("Ligand", yLabelX, y0+gridH/2, 0.5, 0.5, -90)

	f.colorbar(x0+gridW*0.2, xLabelTop+labelH+cbarGap, gridW*0.6, cbarH, max)
	return nil
}

// colorbar draws the Blues ramp from 0 to max with tick labels underneath.
func (f *Figure) colorbar(x, y, w, h, max float64) {
	dc := f.dc
	steps := int(math.Max(w, 1))
	for i := 0; i < steps; i++ {
		dc.SetColor(Blues(float64(i) / float64(steps)))
		dc.DrawRectangle(x+float64(i)*w/float64(steps), y, w/float64(steps)+1, h)
		dc.Fill()
	}
	f.frame(x, y, w, h)

	f.setFont(tickFont, false)
	dc.SetColor(color.Black)
	scale := max
	if scale <= 0 {
		scale = 1
	}
	for _, v := range ticks(max) {
		tx := x + w*v/scale
		f.line(tx, y+h, tx, y+h+f.px(tickLength), tickWidth)
		f.text(strconv.FormatFloat(v, 'f', 0, 64), tx, y+h+f.px(tickLength)+f.px(2), 0.5, 1, 0)
	}
}

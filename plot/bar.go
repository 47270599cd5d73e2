package plot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// BarGraph draws interaction counts per residue for one ligand.
func BarGraph(f *Figure, ligand string, residues []string, counts []float64) error {
	if len(residues) != len(counts) {
		return fmt.Errorf("bar graph: %d residues, %d counts", len(residues), len(counts))
	}
	if len(residues) == 0 {
		return fmt.Errorf("bar graph: no residues")
	}

	var max float64
	for _, c := range counts {
		max = math.Max(max, c)
	}
	yTicks := ticks(max)
	yTop := math.Max(max*1.05, yTicks[len(yTicks)-1])
	if yTop <= 0 {
		yTop = 1
	}

	f.setFont(tickFont, false)
	tickLabels := make([]string, len(yTicks))
	for i, v := range yTicks {
		tickLabels[i] = strconv.FormatFloat(v, 'f', 0, 64)
	}
	yTickW := f.maxWidth(tickLabels)
	residueW := f.maxWidth(residues)
	labelH := f.px(labelFont)
	titleH := f.px(titleFont)

	left := f.px(margin) + labelH + f.px(8) + yTickW + f.px(tickLength) + f.px(4)
	right := f.px(margin) * 2
	top := f.px(margin) + titleH + f.px(12)
	bottom := f.px(margin) + labelH + f.px(8) + residueW + f.px(tickLength) + f.px(4)

	x0, y0 := left, top
	w := math.Max(f.width()-left-right, 1)
	h := math.Max(f.height()-top-bottom, 1)
	slot := w / float64(len(residues))

	dc := f.dc
	for i, c := range counts {
		bh := h * c / yTop
		bx := x0 + float64(i)*slot + slot*0.1
		by := y0 + h - bh
		dc.DrawRectangle(bx, by, slot*0.8, bh)
		dc.SetColor(BarColor)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(f.px(tickWidth))
		dc.Stroke()
	}
	f.frame(x0, y0, w, h)

	f.setFont(tickFont, false)
	dc.SetColor(color.Black)
	for i, v := range yTicks {
		y := y0 + h - h*v/yTop
		f.line(x0-f.px(tickLength), y, x0, y, tickWidth)
		f.text(tickLabels[i], x0-f.px(tickLength)-f.px(4), y, 1, 0.5, 0)
	}

	xTickBottom := y0 + h + f.px(tickLength) + f.px(4)
	for i, r := range residues {
		x := x0 + (float64(i)+0.5)*slot
		f.line(x, y0+h, x, y0+h+f.px(tickLength), tickWidth)
		f.text(r, x, xTickBottom, 1, 0.5, -90)
	}

	f.setFont(labelFont, true)
	f.text("Residue", x0+w/2, xTickBottom+residueW+f.px(8), 0.5, 1, 0)
	f.text("Interaction Count", f.px(margin)+labelH/2, y0+h/2, 0.5, 0.5, -90)

	f.setFont(titleFont, true)
	f.text("Interaction Count per Residue - "+ligand, f.width()/2, f.px(margin), 0.5, 1, 0)

	return nil
}

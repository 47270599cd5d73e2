package plot

import (
	"image/color"
	"math"
)

const (
	frameWidth = 1.25 // pt
	tickLength = 3.5  // pt
	tickWidth  = 0.8  // pt
	tickFont   = 16.0 // pt
	labelFont  = 18.0 // pt
	titleFont  = 20.0 // pt
	margin     = 10.0 // pt
)

// blues is the sequential "Blues" ramp, light to dark.
var blues = []color.RGBA{
	{0xf7, 0xfb, 0xff, 0xff},
	{0xde, 0xeb, 0xf7, 0xff},
	{0xc6, 0xdb, 0xef, 0xff},
	{0x9e, 0xca, 0xe1, 0xff},
	{0x6b, 0xae, 0xd6, 0xff},
	{0x42, 0x92, 0xc6, 0xff},
	{0x21, 0x71, 0xb5, 0xff},
	{0x08, 0x51, 0x9c, 0xff},
	{0x08, 0x30, 0x6b, 0xff},
}

// BarColor is the muted blue used for bars, the third of six Blues swatches.
var BarColor = color.RGBA{0x89, 0xbe, 0xdc, 0xff}

// Blues maps t in [0, 1] onto the ramp; values outside are clamped.
func Blues(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	pos := t * float64(len(blues)-1)
	i := int(pos)
	if i >= len(blues)-1 {
		return blues[len(blues)-1]
	}
	frac := pos - float64(i)
	a, b := blues[i], blues[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

// ticks returns integer tick values from 0 up to max using a 1, 2, 5 step.
func ticks(max float64) []float64 {
	if max <= 0 {
		return []float64{0}
	}

	mag := math.Pow(10, math.Floor(math.Log10(max/6)))
	if mag < 1 {
		mag = 1
	}
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if max/(m*mag) <= 6 {
			step = m * mag
			break
		}
	}

	var t []float64
	for v := 0.0; v <= max+1e-9; v += step {
		t = append(t, v)
	}
	return t
}

package diagram

import (
	"math"

	"explainer/geom"
)

// Curve is a freeform line that can morph between two shapes of the same
// length. A curve without To is static.
type Curve struct {
	From     []geom.Point
	To       []geom.Point
	T        float64
	Position geom.Point
	Style    Style
}

// Points returns the curve at its current T, in world space.
func (c *Curve) Points() []geom.Point {
	pts := c.From
	if c.To != nil {
		pts = geom.LerpPoints(c.From, c.To, c.T)
	}
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(c.Position)
	}
	return out
}

// Sine is one component of a summed waveform.
type Sine struct {
	Amplitude float64
	// Period divides x, so a period of 2 stretches the wave twice as wide.
	Period float64
}

func (s Sine) at(x float64) float64 {
	amp, period := s.Amplitude, s.Period
	if amp == 0 {
		amp = 1
	}
	if period == 0 {
		period = 1
	}
	return amp * math.Sin(x/period)
}

// Wave describes a sum of sines sampled at two phases.
type Wave struct {
	Samples    int
	Step       float64
	Scale      float64
	PhaseFrom  float64
	PhaseTo    float64
	Components []Sine
}

func (w Wave) sample(phase float64) []geom.Point {
	scale := w.Scale
	if scale == 0 {
		scale = 1
	}
	pts := geom.Sample(w.Samples, w.Step, func(x float64) float64 {
		var y float64
		for _, c := range w.Components {
			y += c.at(x + phase)
		}
		return y
	})
	for i := range pts {
		pts[i] = pts[i].Mul(scale)
	}
	return pts
}

// WaveCurve discretises w at both phases into a morphable curve.
func WaveCurve(w Wave, style Style) *Curve {
	return &Curve{
		From:  w.sample(w.PhaseFrom),
		To:    w.sample(w.PhaseTo),
		Style: style,
	}
}

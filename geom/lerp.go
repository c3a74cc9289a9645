package geom

import "fmt"

// LerpPoints interpolates two point lists pairwise by index. t=0 returns a
// copy of from and t=1 a copy of to. The lists must have the same length;
// anything else is a caller bug and panics.
func LerpPoints(from, to []Point, t float64) []Point {
	if len(from) != len(to) {
		panic(fmt.Sprintf("geom: LerpPoints length mismatch: %d != %d", len(from), len(to)))
	}
	out := make([]Point, len(from))
	for i := range from {
		out[i] = from[i].Lerp(to[i], t)
	}
	return out
}

// Lerp interpolates two scalars.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Sample returns n points (x, f(x)) for x = 0, step, 2*step, ...
func Sample(n int, step float64, f func(x float64) float64) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		x := float64(i) * step
		out[i] = Point{X: x, Y: f(x)}
	}
	return out
}

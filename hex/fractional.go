package hex

import "math"

// Fractional is a continuous cube coordinate, e.g. a point sampled on the
// segment between two hex centres.
type Fractional struct {
	Q, R, S float64
}

// Lerp interpolates between a and b; t=0 yields a and t=1 yields b.
func Lerp(a, b Hex, t float64) Fractional {
	return Fractional{
		Q: lerp(float64(a.q), float64(b.q), t),
		R: lerp(float64(a.r), float64(b.r), t),
		S: lerp(float64(a.s), float64(b.s), t),
	}
}

// Round returns the hex containing f. The axis with the largest rounding
// error is recomputed from the other two so the result stays valid.
func (f Fractional) Round() Hex {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Hex{int(q), int(r), int(s)}
}

// Line returns the hexes crossed by the straight segment from a to b,
// both ends included.
func Line(a, b Hex) []Hex {
	n := Distance(a, b)
	if n == 0 {
		return []Hex{a}
	}
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		results = append(results, Lerp(a, b, t).Round())
	}
	return results
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

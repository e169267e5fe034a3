package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Vec is a point in viewport coordinates.
type Vec struct {
	X, Y float64
}

// cubic is one Bézier segment; its start is the previous segment's end.
type cubic struct {
	C1, C2, End Vec
}

// monotoneSegments interpolates pts (strictly increasing X) with a
// monotone cubic spline that never overshoots the data in Y.
func monotoneSegments(pts []Vec) []cubic {
	n := len(pts)
	if n < 3 {
		return nil
	}

	tangents := make([]float64, n)
	for i := 1; i < n-1; i++ {
		tangents[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	tangents[0] = slope2(pts[0], pts[1], tangents[1])
	tangents[n-1] = slope2(pts[n-2], pts[n-1], tangents[n-2])

	out := make([]cubic, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		out = append(out, cubic{
			C1:  Vec{p0.X + dx, p0.Y + dx*tangents[i]},
			C2:  Vec{p1.X - dx, p1.Y - dx*tangents[i+1]},
			End: p1,
		})
	}
	return out
}

// slope3 is the tangent at p1 given both neighbours (Steffen's method).
func slope3(p0, p1, p2 Vec) float64 {
	h0, h1 := p1.X-p0.X, p2.X-p1.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0 := (p1.Y - p0.Y) / h0
	s1 := (p2.Y - p1.Y) / h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 is the one-sided tangent at an end point, given the tangent t at
// the other end of the segment.
func slope2(p0, p1 Vec, t float64) float64 {
	h := p1.X - p0.X
	if h == 0 {
		return t
	}
	return (3*(p1.Y-p0.Y)/h - t) / 2
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

type pathBuilder struct {
	strings.Builder
}

func (b *pathBuilder) cmd(c byte, coords ...float64) {
	b.WriteByte(c)
	for i, v := range coords {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(num(v))
	}
}

// num renders a coordinate with at most four decimals.
func num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func (b *pathBuilder) curve(pts []Vec) {
	switch len(pts) {
	case 0:
		return
	case 1:
		b.cmd('M', pts[0].X, pts[0].Y)
		b.cmd('Z')
		return
	}
	b.cmd('M', pts[0].X, pts[0].Y)
	if len(pts) == 2 {
		b.cmd('L', pts[1].X, pts[1].Y)
		return
	}
	for _, seg := range monotoneSegments(pts) {
		b.cmd('C', seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.End.X, seg.End.Y)
	}
}

// LinePath returns SVG path data for a monotone curve through pts.
func LinePath(pts []Vec) string {
	var b pathBuilder
	b.curve(pts)
	return b.String()
}

// AreaPath is LinePath closed down to the horizontal line y = baseline.
func AreaPath(pts []Vec, baseline float64) string {
	if len(pts) < 2 {
		return ""
	}
	var b pathBuilder
	b.curve(pts)
	b.cmd('L', pts[len(pts)-1].X, baseline)
	b.cmd('L', pts[0].X, baseline)
	b.cmd('Z')
	return b.String()
}

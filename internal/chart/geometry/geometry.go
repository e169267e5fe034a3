package geometry

import (
	"errors"
	"math"
	"strconv"

	"growth-dashboard/internal/growth/core/domain"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// ErrNoData is returned for series too short to draw.
var ErrNoData = errors.New("not enough data to draw a chart")

// Viewport bounds, shared by both axes.
const (
	ViewMin = 0.0
	ViewMax = 100.0
)

const (
	defaultTickCount = 8
	paddingRatio     = 0.10
)

// LabelRule decides whether point i gets an x-axis label and what it says.
type LabelRule func(series domain.Series, i int) (label string, ok bool)

// TooltipFormatter renders a point's date and value for display.
type TooltipFormatter func(p domain.Point) (date, value string)

// Config parameterizes one chart variant.
type Config struct {
	// Padded pads the value domain by 10% of its span and lets the floor
	// go below zero. Unpadded charts use [0, max].
	Padded bool

	YTickCount     int  // 0 means 8
	SkipFirstYTick bool // hide the tick at the floor
	SignedYTicks   bool // prefix positive tick labels with "+"

	XLabel  LabelRule
	Tooltip TooltipFormatter
}

type PlotPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Date  string  `json:"date"`
	Value int     `json:"value"`
}

type YTick struct {
	Value float64 `json:"value"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

type XTick struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// HitRegion is the full-height strip that routes pointer input to the
// nearest point. Its edges sit halfway to the neighbouring points.
type HitRegion struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Date   string  `json:"date"`
	Value  string  `json:"value"`
}

type Geometry struct {
	X TimeScale   `json:"-"`
	Y LinearScale `json:"-"`

	DomainFloor   float64 `json:"domainFloor"`
	DomainCeiling float64 `json:"domainCeiling"`
	ZeroY         float64 `json:"zeroY"`

	Points     []PlotPoint `json:"points"`
	LinePath   string      `json:"linePath"`
	AreaPath   string      `json:"areaPath"`
	YTicks     []YTick     `json:"yTicks"`
	XTicks     []XTick     `json:"xTicks"`
	HitRegions []HitRegion `json:"hitRegions"`
}

// Compute maps a series into the 100x100 viewport.
func Compute(series domain.Series, cfg Config) (*Geometry, error) {
	if len(series) < 2 {
		return nil, ErrNoData
	}

	floor, ceiling := ValueDomain(series, cfg.Padded)
	g := &Geometry{
		X:             TimeScale{Start: series[0].Date, End: series[len(series)-1].Date, R0: ViewMin, R1: ViewMax},
		Y:             LinearScale{D0: floor, D1: ceiling, R0: ViewMax, R1: ViewMin},
		DomainFloor:   floor,
		DomainCeiling: ceiling,
	}
	g.ZeroY = g.Y.Map(0)

	pts := make([]Vec, len(series))
	g.Points = make([]PlotPoint, len(series))
	for i, p := range series {
		pts[i] = Vec{X: g.X.Map(p.Date), Y: g.Y.Map(float64(p.Value))}
		g.Points[i] = PlotPoint{X: pts[i].X, Y: pts[i].Y, Date: p.Key(), Value: p.Value}
	}

	g.LinePath = LinePath(pts)
	g.AreaPath = AreaPath(pts, g.ZeroY)
	g.HitRegions = hitRegions(series, pts, cfg.Tooltip)
	g.YTicks = yTicks(g.Y, cfg)
	g.XTicks = xTicks(series, pts, cfg.XLabel)
	return g, nil
}

// ValueDomain returns the y-axis domain for a series.
func ValueDomain(series domain.Series, padded bool) (floor, ceiling float64) {
	values := lo.Map(series, func(p domain.Point, _ int) float64 { return float64(p.Value) })
	minValue, _ := stats.Min(values)
	maxValue, _ := stats.Max(values)

	if !padded {
		return 0, maxValue
	}

	padding := (maxValue - minValue) * paddingRatio
	if minValue < 0 {
		floor = minValue - padding
	}
	return floor, maxValue + padding
}

func hitRegions(series domain.Series, pts []Vec, tooltip TooltipFormatter) []HitRegion {
	out := make([]HitRegion, len(pts))
	for i, p := range pts {
		prevX, nextX := p.X, p.X
		if i > 0 {
			prevX = pts[i-1].X
		}
		if i < len(pts)-1 {
			nextX = pts[i+1].X
		}
		left := (prevX + p.X) / 2
		right := (p.X + nextX) / 2

		r := HitRegion{Index: i, X: p.X, Left: left, Width: right - left, Top: ViewMin, Height: ViewMax - ViewMin}
		if tooltip != nil {
			r.Date, r.Value = tooltip(series[i])
		} else {
			r.Date, r.Value = series[i].Key(), strconv.Itoa(series[i].Value)
		}
		out[i] = r
	}
	return out
}

// yTicks keeps only whole-number ticks, since every series holds counts.
func yTicks(scale LinearScale, cfg Config) []YTick {
	count := cfg.YTickCount
	if count <= 0 {
		count = defaultTickCount
	}

	out := []YTick{}
	for i, v := range scale.Ticks(count) {
		if i == 0 && cfg.SkipFirstYTick {
			continue
		}
		if v != math.Trunc(v) {
			continue
		}
		label := strconv.FormatFloat(v, 'f', 0, 64)
		if cfg.SignedYTicks && v > 0 {
			label = "+" + label
		}
		out = append(out, YTick{Value: v, Y: scale.Map(v), Label: label})
	}
	return out
}

func xTicks(series domain.Series, pts []Vec, rule LabelRule) []XTick {
	if rule == nil {
		return nil
	}
	out := []XTick{}
	for i := range series {
		if label, ok := rule(series, i); ok {
			out = append(out, XTick{X: pts[i].X, Label: label})
		}
	}
	return out
}

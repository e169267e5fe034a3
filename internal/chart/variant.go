package chart

import (
	"errors"
	"fmt"

	"growth-dashboard/internal/chart/geometry"
	"growth-dashboard/internal/growth/core/domain"
)

type Kind string

const (
	KindCumulative    Kind = "cumulative"
	KindDailyGrowth   Kind = "daily"
	KindMonthlyGrowth Kind = "monthly"
)

var ErrUnknownKind = errors.New("unknown chart kind")

// Style is the purely visual part of a variant.
type Style struct {
	GradientID string
	Stroke     string
	StrokeDark string
	Fill       string
	FillDark   string
	ZeroLine   bool
}

// Variant is one of the three dashboard charts. Variants share all the
// geometry and differ only in configuration and colours.
type Variant struct {
	Kind  Kind
	Title string
	Style Style

	series    func(domain.GrowthReport) domain.Series
	configure func(domain.TimeFilter) geometry.Config
}

var Cumulative = Variant{
	Kind:  KindCumulative,
	Title: "Cumulative Growth",
	Style: Style{
		GradientID: "cumulativeGradient",
		Stroke:     "#facc15",
		StrokeDark: "#ca8a04",
		Fill:       "#eab308",
		FillDark:   "#eab308",
	},
	series: func(r domain.GrowthReport) domain.Series { return r.Cumulative },
	configure: func(f domain.TimeFilter) geometry.Config {
		return geometry.Config{
			SkipFirstYTick: true,
			XLabel:         cumulativeLabels(f),
			Tooltip: func(p domain.Point) (string, string) {
				return p.Date.Format(layoutTooltipDay), FormatCount(p.Value)
			},
		}
	},
}

var DailyGrowth = Variant{
	Kind:  KindDailyGrowth,
	Title: "Daily Growth Rate",
	Style: Style{
		GradientID: "growthRateGradient",
		Stroke:     "#22c55e",
		StrokeDark: "#4ade80",
		Fill:       "#22c55e",
		FillDark:   "#14532d",
		ZeroLine:   true,
	},
	series: func(r domain.GrowthReport) domain.Series { return r.Daily },
	configure: func(domain.TimeFilter) geometry.Config {
		return geometry.Config{
			Padded:       true,
			SignedYTicks: true,
			XLabel:       dailyLabels(),
			Tooltip: func(p domain.Point) (string, string) {
				return p.Date.Format(layoutTooltipDay), FormatSigned(p.Value) + " users"
			},
		}
	},
}

var MonthlyGrowth = Variant{
	Kind:  KindMonthlyGrowth,
	Title: "Monthly Growth Rate",
	Style: Style{
		GradientID: "monthlyGrowthGradient",
		Stroke:     "#3b82f6",
		StrokeDark: "#60a5fa",
		Fill:       "#3b82f6",
		FillDark:   "#1e3a8a",
		ZeroLine:   true,
	},
	series: func(r domain.GrowthReport) domain.Series { return r.Monthly },
	configure: func(f domain.TimeFilter) geometry.Config {
		return geometry.Config{
			Padded:       true,
			SignedYTicks: true,
			XLabel:       monthlyLabels(f),
			Tooltip: func(p domain.Point) (string, string) {
				return p.Date.Format(layoutTooltipMonth), FormatSigned(p.Value) + " avg users/day"
			},
		}
	},
}

// Variants lists the charts in page order.
var Variants = []Variant{Cumulative, DailyGrowth, MonthlyGrowth}

func VariantFor(kind Kind) (Variant, error) {
	for _, v := range Variants {
		if v.Kind == kind {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Series picks this variant's series out of an (already sliced) report.
func (v Variant) Series(report domain.GrowthReport) domain.Series {
	return v.series(report)
}

func (v Variant) Config(filter domain.TimeFilter) geometry.Config {
	return v.configure(filter)
}

// Render computes the geometry for this variant. It returns
// geometry.ErrNoData when the series is too short to draw.
func (v Variant) Render(report domain.GrowthReport, filter domain.TimeFilter) (*geometry.Geometry, error) {
	return geometry.Compute(v.Series(report), v.Config(filter))
}

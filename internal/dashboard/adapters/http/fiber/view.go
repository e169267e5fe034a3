package fiber

import (
	"embed"
	"errors"
	"html/template"
	"strconv"
	"time"

	"growth-dashboard/internal/chart"
	"growth-dashboard/internal/chart/geometry"
	"growth-dashboard/internal/dashboard/core/domain"
	growth "growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/usecase"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("dashboard.html.tmpl").
		Funcs(template.FuncMap{
			"num": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
			"css": func(s string) template.CSS { return template.CSS(s) },
		}).
		ParseFS(templateFS, "templates/dashboard.html.tmpl"),
)

const (
	noDataMessage    = "No data available for the selected period"
	loadErrorMessage = "Failed to load user data"
)

type rangeOption struct {
	Value    string
	Label    string
	Selected bool
}

type panelView struct {
	Kind     chart.Kind
	Title    string
	Style    chart.Style
	Fill     string
	Geometry *geometry.Geometry
	NoData   bool
	Error    string
}

type pageView struct {
	State   domain.ViewState
	Dark    bool
	Options []rangeOption
	Panels  []panelView
}

// buildPage turns the view state and the loaded report into everything
// the template needs. report is nil when loading failed.
func buildPage(state domain.ViewState, report *growth.GrowthReport, now time.Time) (pageView, error) {
	page := pageView{
		State:   state,
		Dark:    state.Theme == domain.ThemeDark,
		Options: make([]rangeOption, 0, len(growth.TimeFilters)),
		Panels:  make([]panelView, 0, len(chart.Variants)),
	}
	for _, f := range growth.TimeFilters {
		page.Options = append(page.Options, rangeOption{
			Value:    string(f),
			Label:    f.Label(),
			Selected: f == state.Filter,
		})
	}

	var sliced growth.GrowthReport
	if report != nil {
		sliced = usecase.SliceReport(*report, state.Filter, now)
	}

	for _, v := range chart.Variants {
		panel := panelView{Kind: v.Kind, Title: v.Title, Style: v.Style, Fill: v.Style.Fill}
		if page.Dark {
			panel.Fill = v.Style.FillDark
		}

		if report == nil {
			panel.Error = loadErrorMessage
			page.Panels = append(page.Panels, panel)
			continue
		}

		g, err := v.Render(sliced, state.Filter)
		switch {
		case errors.Is(err, geometry.ErrNoData):
			panel.NoData = true
		case err != nil:
			return pageView{}, err
		default:
			panel.Geometry = g
		}
		page.Panels = append(page.Panels, panel)
	}
	return page, nil
}

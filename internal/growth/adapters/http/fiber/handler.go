package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"growth-dashboard/internal/chart"
	"growth-dashboard/internal/chart/geometry"
	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/usecase"
	"growth-dashboard/internal/logging"

	"github.com/gofiber/fiber/v2"
)

type LoadGrowthUseCase interface {
	Execute(ctx context.Context) (*domain.GrowthReport, error)
}

type GrowthHandler struct {
	uc  LoadGrowthUseCase
	now func() time.Time
	log *logging.Logger
}

// NewGrowthHandler builds the handler. now is the clock used for range
// cutoffs; nil means time.Now.
func NewGrowthHandler(uc LoadGrowthUseCase, now func() time.Time, log *logging.Logger) *GrowthHandler {
	if now == nil {
		now = time.Now
	}
	return &GrowthHandler{uc: uc, now: now, log: log}
}

func (h *GrowthHandler) Register(router fiber.Router) {
	router.Get("/api/growth", h.GetGrowth)
	router.Get("/api/charts/:chart", h.GetChart)
}

// GetGrowth godoc
// @Summary Subscriber growth series
// @Description Returns cumulative, daily and monthly growth series for the selected range
// @Tags Growth
// @Produce json
// @Param range query string false "Range: all | 7days | 30days | 3months | 12months"
// @Success 200 {object} GrowthResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/growth [get]
func (h *GrowthHandler) GetGrowth(c *fiber.Ctx) error {
	filter, err := domain.ParseTimeFilter(c.Query("range"))
	if err != nil {
		return badRange(c, err)
	}

	resp := GrowthResponse{
		Range:                 string(filter),
		CumulativeData:        []PointResponse{},
		GrowthRateData:        []PointResponse{},
		MonthlyGrowthRateData: []PointResponse{},
	}

	report, err := h.uc.Execute(c.UserContext())
	if err != nil {
		h.log.Error("load growth: %v", err)
		msg := LoadErrorMessage
		resp.Error = &msg
		return c.Status(http.StatusOK).JSON(resp)
	}

	sliced := usecase.SliceReport(*report, filter, h.now())
	resp.CumulativeData = toPointResponses(sliced.Cumulative)
	resp.GrowthRateData = toPointResponses(sliced.Daily)
	resp.MonthlyGrowthRateData = toPointResponses(sliced.Monthly)
	resp.Accepted = report.Accepted
	resp.Skipped = report.Skipped

	return c.Status(http.StatusOK).JSON(resp)
}

// GetChart godoc
// @Summary Chart geometry
// @Description Returns viewport geometry (paths, ticks, hit regions) for one chart
// @Tags Growth
// @Produce json
// @Param chart path string true "Chart: cumulative | daily | monthly"
// @Param range query string false "Range: all | 7days | 30days | 3months | 12months"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/charts/{chart} [get]
func (h *GrowthHandler) GetChart(c *fiber.Ctx) error {
	variant, err := chart.VariantFor(chart.Kind(c.Params("chart")))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: err.Error(),
		})
	}

	filter, err := domain.ParseTimeFilter(c.Query("range"))
	if err != nil {
		return badRange(c, err)
	}

	resp := ChartResponse{
		Chart: string(variant.Kind),
		Title: variant.Title,
		Range: string(filter),
	}

	report, err := h.uc.Execute(c.UserContext())
	if err != nil {
		h.log.Error("load growth: %v", err)
		msg := LoadErrorMessage
		resp.Error = &msg
		resp.NoData = true
		return c.Status(http.StatusOK).JSON(resp)
	}

	sliced := usecase.SliceReport(*report, filter, h.now())
	g, err := variant.Render(sliced, filter)
	switch {
	case errors.Is(err, geometry.ErrNoData):
		resp.NoData = true
	case err != nil:
		h.log.Error("render %s chart: %v", variant.Kind, err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	default:
		resp.Geometry = g
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func badRange(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_range",
		Message: err.Error(),
	})
}

package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "growth-dashboard/internal/growth/adapters/http/fiber"
	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/logging"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeLoadGrowthUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.GrowthReport, error)
	calls     int
}

func (f *fakeLoadGrowthUseCase) Execute(ctx context.Context) (*domain.GrowthReport, error) {
	f.calls++
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return &domain.GrowthReport{}, nil
}

var fixedNow = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

// tenDays has one point per day from Jan 1 to Jan 10 2024.
func tenDays() *domain.GrowthReport {
	r := &domain.GrowthReport{Accepted: 55, Skipped: 2}
	total := 0
	for i := 0; i < 10; i++ {
		d := time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		total += i + 1
		r.Cumulative = append(r.Cumulative, domain.Point{Date: d, Value: total})
		r.Daily = append(r.Daily, domain.Point{Date: d, Value: i + 1})
	}
	r.Monthly = domain.Series{{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 6}}
	return r
}

func setupApp(t *testing.T, uc httpadapter.LoadGrowthUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewGrowthHandler(uc, func() time.Time { return fixedNow }, logging.Discard())
	h.Register(app)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestGetGrowth_AllTime(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) { return tenDays(), nil },
	}
	app := setupApp(t, uc)

	resp, body := doGet(t, app, "/api/growth")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got httpadapter.GrowthResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Range != "all" {
		t.Errorf("expected range=all, got %q", got.Range)
	}
	if len(got.CumulativeData) != 10 || len(got.GrowthRateData) != 10 || len(got.MonthlyGrowthRateData) != 1 {
		t.Fatalf("unexpected lengths: %d %d %d",
			len(got.CumulativeData), len(got.GrowthRateData), len(got.MonthlyGrowthRateData))
	}
	if got.CumulativeData[9] != (httpadapter.PointResponse{Date: "2024-01-10", Value: 55}) {
		t.Errorf("unexpected last cumulative point: %+v", got.CumulativeData[9])
	}
	if got.Error != nil {
		t.Errorf("expected error=null, got %q", *got.Error)
	}
	if got.Accepted != 55 || got.Skipped != 2 {
		t.Errorf("expected accepted=55 skipped=2, got %d %d", got.Accepted, got.Skipped)
	}
	if !strings.Contains(string(body), `"error":null`) {
		t.Errorf("expected explicit null error, got %s", body)
	}
}

func TestGetGrowth_SevenDays(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) { return tenDays(), nil },
	}
	app := setupApp(t, uc)

	_, body := doGet(t, app, "/api/growth?range=7days")

	var got httpadapter.GrowthResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// cutoff is Jan 3 12:00, so Jan 4 is the first point kept
	if len(got.GrowthRateData) != 7 || got.GrowthRateData[0].Date != "2024-01-04" {
		t.Fatalf("unexpected daily slice: %+v", got.GrowthRateData)
	}
	// cumulative totals are not rebased
	if got.CumulativeData[0].Value != 10 {
		t.Errorf("expected cumulative 10 on Jan 4, got %d", got.CumulativeData[0].Value)
	}
	// monthly widens to 30 days and keeps Jan 1
	if len(got.MonthlyGrowthRateData) != 1 {
		t.Errorf("expected monthly point to survive, got %+v", got.MonthlyGrowthRateData)
	}
}

func TestGetGrowth_InvalidRange(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{}
	app := setupApp(t, uc)

	resp, body := doGet(t, app, "/api/growth?range=5days")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}

	var got httpadapter.ErrorResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Error != "invalid_range" {
		t.Errorf("expected invalid_range, got %q", got.Error)
	}
	if uc.calls != 0 {
		t.Errorf("expected usecase not to be called")
	}
}

func TestGetGrowth_SourceFailure(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) {
			return nil, errors.New("open data/data.csv: no such file or directory")
		},
	}
	app := setupApp(t, uc)

	resp, body := doGet(t, app, "/api/growth")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got httpadapter.GrowthResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Error == nil || *got.Error != "Failed to load user data" {
		t.Fatalf("expected load error message, got %v", got.Error)
	}
	if !strings.Contains(string(body), `"cumulativeData":[]`) {
		t.Errorf("expected empty arrays, got %s", body)
	}
}

func TestGetChart_Cumulative(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) { return tenDays(), nil },
	}
	app := setupApp(t, uc)

	resp, body := doGet(t, app, "/api/charts/cumulative")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got httpadapter.ChartResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.NoData || got.Geometry == nil {
		t.Fatalf("expected geometry, got %s", body)
	}
	if got.Title != "Cumulative Growth" {
		t.Errorf("unexpected title %q", got.Title)
	}
	if len(got.Geometry.Points) != 10 || len(got.Geometry.HitRegions) != 10 {
		t.Errorf("expected 10 points and hit regions, got %d/%d",
			len(got.Geometry.Points), len(got.Geometry.HitRegions))
	}
	if !strings.HasPrefix(got.Geometry.LinePath, "M0,") {
		t.Errorf("expected path to start at x=0, got %q", got.Geometry.LinePath)
	}
	if got.Geometry.HitRegions[0].Date != "Jan 01, 2024" {
		t.Errorf("unexpected tooltip date %q", got.Geometry.HitRegions[0].Date)
	}
}

func TestGetChart_MonthlyNoData(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) { return tenDays(), nil },
	}
	app := setupApp(t, uc)

	_, body := doGet(t, app, "/api/charts/monthly?range=30days")

	var got httpadapter.ChartResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.NoData || got.Geometry != nil {
		t.Fatalf("expected noData for a single month, got %s", body)
	}
	if got.Error != nil {
		t.Errorf("expected no error, got %q", *got.Error)
	}
}

func TestGetChart_UnknownChart(t *testing.T) {
	app := setupApp(t, &fakeLoadGrowthUseCase{})

	resp, _ := doGet(t, app, "/api/charts/pie")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestGetChart_InvalidRange(t *testing.T) {
	app := setupApp(t, &fakeLoadGrowthUseCase{})

	resp, _ := doGet(t, app, "/api/charts/daily?range=forever")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetChart_SourceFailure(t *testing.T) {
	uc := &fakeLoadGrowthUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.GrowthReport, error) {
			return nil, errors.New("permission denied")
		},
	}
	app := setupApp(t, uc)

	resp, body := doGet(t, app, "/api/charts/daily")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got httpadapter.ChartResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.NoData || got.Error == nil || *got.Error != httpadapter.LoadErrorMessage {
		t.Fatalf("expected noData with load error, got %s", body)
	}
}

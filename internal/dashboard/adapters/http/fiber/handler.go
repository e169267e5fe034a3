package fiber

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"growth-dashboard/internal/dashboard/core/domain"
	growth "growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientCookie identifies a browser for preference storage.
const ClientCookie = "client_id"

const clientCookieMaxAge = 365 * 24 * time.Hour

type LoadGrowthUseCase interface {
	Execute(ctx context.Context) (*growth.GrowthReport, error)
}

type ThemeUseCase interface {
	Current(ctx context.Context, clientID string) domain.Theme
	Toggle(ctx context.Context, clientID string) (domain.Theme, error)
}

type DashboardHandler struct {
	growthUC LoadGrowthUseCase
	themeUC  ThemeUseCase
	now      func() time.Time
	log      *logging.Logger
}

func NewDashboardHandler(growthUC LoadGrowthUseCase, themeUC ThemeUseCase, now func() time.Time, log *logging.Logger) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{growthUC: growthUC, themeUC: themeUC, now: now, log: log}
}

func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/", h.GetPage)
	router.Post("/theme/toggle", h.ToggleTheme)
	router.Get("/api/theme", h.GetTheme)
}

// GetPage godoc
// @Summary Dashboard page
// @Description Server-rendered dashboard with the three growth charts
// @Tags Dashboard
// @Produce html
// @Param range query string false "Range: all | 7days | 30days | 3months | 12months"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *DashboardHandler) GetPage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter, err := growth.ParseTimeFilter(c.Query("range"))
	if err != nil {
		h.log.Debug("page: %v, showing all time", err)
		filter = growth.FilterAll
	}

	clientID := h.clientID(c)
	state := domain.ViewState{
		ClientID: clientID,
		Filter:   filter,
		Theme:    h.themeUC.Current(ctx, clientID),
	}

	report, err := h.growthUC.Execute(ctx)
	if err != nil {
		h.log.Error("load growth: %v", err)
	}

	page, err := buildPage(state, report, h.now())
	if err != nil {
		h.log.Error("build page: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		h.log.Error("render page: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// ToggleTheme godoc
// @Summary Toggle colour theme
// @Description Flips the client's theme between light and dark and redirects back
// @Tags Dashboard
// @Success 303 {string} string "See Other"
// @Router /theme/toggle [post]
func (h *DashboardHandler) ToggleTheme(c *fiber.Ctx) error {
	clientID := h.clientID(c)
	if _, err := h.themeUC.Toggle(c.UserContext(), clientID); err != nil {
		h.log.Warn("toggle theme for %s: %v", clientID, err)
	}
	return c.Redirect(backTo(c.Get(fiber.HeaderReferer)), http.StatusSeeOther)
}

// GetTheme godoc
// @Summary Current colour theme
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /api/theme [get]
func (h *DashboardHandler) GetTheme(c *fiber.Ctx) error {
	theme := h.themeUC.Current(c.UserContext(), h.clientID(c))
	return c.Status(http.StatusOK).JSON(ThemeResponse{Theme: string(theme)})
}

// clientID returns the caller's id, issuing a new cookie when it is
// missing or malformed.
func (h *DashboardHandler) clientID(c *fiber.Ctx) string {
	if id, err := uuid.Parse(c.Cookies(ClientCookie)); err == nil {
		return id.String()
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		Expires:  h.now().Add(clientCookieMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

// backTo keeps only the path and query of the referring page so the
// redirect never leaves the site.
func backTo(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.RequestURI()
}

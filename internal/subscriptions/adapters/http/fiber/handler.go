package fiber

import (
	"context"
	"errors"
	"net/http"

	"growth-dashboard/internal/logging"
	"growth-dashboard/internal/subscriptions/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreSubscriptionUseCase interface {
	Execute(ctx context.Context, in usecase.StoreSubscriptionInput) (bool, error)
	BulkStore(ctx context.Context, in usecase.BulkStoreSubscriptionsInput) (usecase.BulkStoreSubscriptionsResult, error)
}

type SubscriptionHandler struct {
	storeUC StoreSubscriptionUseCase
	log     *logging.Logger
}

func NewSubscriptionHandler(storeUC StoreSubscriptionUseCase, log *logging.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{storeUC: storeUC, log: log}
}

func (h *SubscriptionHandler) Register(router fiber.Router) {
	router.Post("/subscriptions", h.CreateSubscription)
	router.Post("/subscriptions/bulk", h.BulkCreateSubscriptions)
}

// CreateSubscription godoc
// @Summary Record a subscription
// @Description Stores a single sign-up with idempotency handling
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body CreateSubscriptionRequest true "Subscription payload"
// @Success 201 {object} CreateSubscriptionResponse
// @Success 200 {object} CreateSubscriptionResponse "Duplicate subscription"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var req CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateSubscriptionResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateSubscriptionResponse{Status: "created"})
}

// BulkCreateSubscriptions godoc
// @Summary Bulk record subscriptions
// @Description Validates every item, then stores them individually
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body BulkCreateSubscriptionsRequest true "Bulk subscription payload"
// @Success 201 {object} BulkCreateSubscriptionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions/bulk [post]
func (h *SubscriptionHandler) BulkCreateSubscriptions(c *fiber.Ctx) error {
	var req BulkCreateSubscriptionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Subscriptions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "subscriptions_list_required",
		})
	}

	inputs := make([]usecase.StoreSubscriptionInput, len(req.Subscriptions))
	for i, s := range req.Subscriptions {
		inputs[i] = toInput(s)
	}

	result, err := h.storeUC.BulkStore(
		c.UserContext(),
		usecase.BulkStoreSubscriptionsInput{Subscriptions: inputs},
	)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateSubscriptionsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func (h *SubscriptionHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscription),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_subscription",
			Message: err.Error(),
		})
	default:
		h.log.Error("store subscription: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateSubscriptionRequest) usecase.StoreSubscriptionInput {
	return usecase.StoreSubscriptionInput{
		UserID:       req.UserID,
		Source:       req.Source,
		SubscribedAt: req.SubscribedAt,
		Tags:         req.Tags,
		Metadata:     req.Metadata,
	}
}

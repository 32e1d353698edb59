package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/handler/dto"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type PaymentFinalizer interface {
	FinalizeBookingPayment(ctx context.Context, ref, paymentIntentID string) error
	FinalizeCancellation(ctx context.Context, ref string) error
}

// WebhookHandler verifies and dispatches Stripe checkout events. Two
// endpoints share it, each with its own signing secret.
type WebhookHandler struct {
	bookings                  PaymentFinalizer
	webhookSecret             string
	cancellationWebhookSecret string
	logger                    logger.Logger
}

func NewWebhookHandler(bookings PaymentFinalizer, webhookSecret, cancellationWebhookSecret string, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		bookings:                  bookings,
		webhookSecret:             webhookSecret,
		cancellationWebhookSecret: cancellationWebhookSecret,
		logger:                    logger,
	}
}

func (h *WebhookHandler) HandleCheckout(c *ginext.Context) {
	h.handle(c, h.webhookSecret)
}

func (h *WebhookHandler) HandleCancellationCheckout(c *ginext.Context) {
	h.handle(c, h.cancellationWebhookSecret)
}

func (h *WebhookHandler) handle(c *ginext.Context, secret string) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), secret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", logger.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.Status(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		h.logger.Error("unmarshal checkout session", logger.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed event"})
		return
	}

	ref := session.Metadata["booking_ref"]
	if ref == "" {
		h.logger.Warn("checkout session without booking ref", logger.String("session_id", session.ID))
		c.Status(http.StatusOK)
		return
	}

	kind := domain.CheckoutKind(session.Metadata["kind"])
	switch kind {
	case domain.CheckoutKindCancellation:
		err = h.bookings.FinalizeCancellation(c.Request.Context(), ref)
	default:
		var intentID string
		if session.PaymentIntent != nil {
			intentID = session.PaymentIntent.ID
		}
		err = h.bookings.FinalizeBookingPayment(c.Request.Context(), ref, intentID)
	}
	if err != nil {
		h.logger.Error("finalize checkout",
			logger.String("ref", ref),
			logger.String("kind", string(kind)),
			logger.String("error", err.Error()),
		)
		// Non-2xx makes Stripe retry the delivery.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}

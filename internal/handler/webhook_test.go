package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	hmocks "github.com/pixelplot/ShootBooker/internal/handler/mocks"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	testWebhookSecret      = "whsec_test"
	testCancellationSecret = "whsec_cancel"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signPayload(secret string, payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedEvent(ref, kind, paymentIntent string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","api_version":%q,"type":"checkout.session.completed","data":{"object":{`+
			`"id":"cs_1","payment_intent":%q,"metadata":{"booking_ref":%q,"kind":%q}}}}`,
		stripe.APIVersion, paymentIntent, ref, kind,
	))
}

func setupWebhookRouter(t *testing.T) (*hmocks.MockPaymentFinalizer, http.Handler) {
	t.Helper()
	bookings := hmocks.NewMockPaymentFinalizer(t)

	wh := NewWebhookHandler(bookings, testWebhookSecret, testCancellationSecret, newTestLogger(t))

	r := ginext.New("test")
	r.POST("/webhooks/stripe", wh.HandleCheckout)
	r.POST("/webhooks/stripe/cancellation", wh.HandleCancellationCheckout)

	return bookings, r
}

func TestWebhook_BookingCheckoutCompleted(t *testing.T) {
	bookings, r := setupWebhookRouter(t)

	bookings.EXPECT().FinalizeBookingPayment(mock.Anything, "SB-1", "pi_123").Return(nil)

	payload := checkoutCompletedEvent("SB-1", "booking", "pi_123")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(testWebhookSecret, payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_CancellationCheckoutCompleted(t *testing.T) {
	bookings, r := setupWebhookRouter(t)

	bookings.EXPECT().FinalizeCancellation(mock.Anything, "SB-1").Return(nil)

	payload := checkoutCompletedEvent("SB-1", "cancellation", "pi_456")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe/cancellation", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(testCancellationSecret, payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_BadSignatureRejected(t *testing.T) {
	_, r := setupWebhookRouter(t)

	payload := checkoutCompletedEvent("SB-1", "booking", "pi_123")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload("whsec_wrong", payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhook_IgnoresOtherEventTypes(t *testing.T) {
	_, r := setupWebhookRouter(t)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_2","api_version":%q,"type":"payment_intent.created","data":{"object":{"id":"pi_1"}}}`,
		stripe.APIVersion,
	))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(testWebhookSecret, payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_MissingBookingRefAccepted(t *testing.T) {
	_, r := setupWebhookRouter(t)

	// Acknowledge so Stripe does not retry what we can never process.
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_3","api_version":%q,"type":"checkout.session.completed","data":{"object":{"id":"cs_2","metadata":{}}}}`,
		stripe.APIVersion,
	))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(testWebhookSecret, payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_FinalizeFailureReturns500(t *testing.T) {
	bookings, r := setupWebhookRouter(t)

	bookings.EXPECT().FinalizeBookingPayment(mock.Anything, "SB-1", "pi_123").Return(assert.AnError)

	payload := checkoutCompletedEvent("SB-1", "booking", "pi_123")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(testWebhookSecret, payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

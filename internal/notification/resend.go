package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pixelplot/ShootBooker/internal/config"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const whenLayout = "Monday 2 January 2006 at 15:04"

// layout is the shared HTML wrapper every transactional email uses.
const layout = `<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;">
<h2 style="color:#1a1a2e;">%s</h2>
%s
<p style="color:#888;font-size:12px;margin-top:32px;">ShootBooker — property media, booked simply.</p>
</div>`

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Bcc     string `json:"bcc,omitempty"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// EmailNotifier sends booking emails through the Resend API. Every send blind
// copies the internal ops address. Failures are logged and swallowed: email
// must never fail the parent operation.
type EmailNotifier struct {
	apiKey   string
	endpoint string
	from     string
	opsBCC   string
	httpc    *http.Client
	logger   logger.Logger
}

func NewEmailNotifier(cfg config.EmailConfig, log logger.Logger) *EmailNotifier {
	if cfg.APIKey == "" {
		log.Warn("email api key is empty, notifications disabled")
	}

	return &EmailNotifier{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		from:     cfg.From,
		opsBCC:   cfg.OpsBCC,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		logger:   log,
	}
}

func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your %s booking at <b>%s</b> is confirmed for <b>%s</b>.</p><p>Reference: <b>%s</b><br>Total paid: £%.2f</p>",
		b.ClientName, b.Service, b.PropertyAddress, b.ScheduledAt.Format(whenLayout), b.Ref, b.FinalPrice,
	)
	n.send(ctx, b.ClientEmail, "Booking confirmed — "+b.Ref, "Booking confirmed", body)
}

func (n *EmailNotifier) NotifyBookingReserved(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your %s booking at <b>%s</b> is reserved for <b>%s</b>.</p><p>Reference: <b>%s</b><br>Amount due: £%.2f</p>",
		b.ClientName, b.Service, b.PropertyAddress, b.ScheduledAt.Format(whenLayout), b.Ref, b.FinalPrice,
	)
	n.send(ctx, b.ClientEmail, "Booking reserved — "+b.Ref, "Booking reserved", body)
}

func (n *EmailNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, quote domain.CancellationQuote) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking <b>%s</b> at %s has been cancelled.</p><p>Cancellation charge: £%.2f<br>Refund due: £%.2f</p>",
		b.ClientName, b.Ref, b.PropertyAddress, quote.FeePounds(), quote.RefundPounds(),
	)
	n.send(ctx, b.ClientEmail, "Booking cancelled — "+b.Ref, "Booking cancelled", body)
}

func (n *EmailNotifier) NotifyBookingRescheduled(ctx context.Context, b *domain.Booking) {
	var was string
	if b.OriginalScheduledAt != nil {
		was = fmt.Sprintf("<p>Originally booked for %s.</p>", b.OriginalScheduledAt.Format(whenLayout))
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking <b>%s</b> at %s has been moved to <b>%s</b>.</p>%s",
		b.ClientName, b.Ref, b.PropertyAddress, b.ScheduledAt.Format(whenLayout), was,
	)
	n.send(ctx, b.ClientEmail, "Booking rescheduled — "+b.Ref, "Booking rescheduled", body)
}

func (n *EmailNotifier) NotifyServiceModified(ctx context.Context, b *domain.Booking, deltaPence int64) {
	var settle string
	switch {
	case deltaPence > 0:
		settle = fmt.Sprintf("<p>We have charged the difference of £%.2f to your card on file.</p>", domain.Pounds(deltaPence))
	case deltaPence < 0:
		settle = fmt.Sprintf("<p>A refund of £%.2f is on its way to you.</p>", domain.Pounds(-deltaPence))
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking <b>%s</b> has been updated to <b>%s</b>.</p><p>New total: £%.2f</p>%s",
		b.ClientName, b.Ref, b.Service, b.FinalPrice, settle,
	)
	n.send(ctx, b.ClientEmail, "Booking updated — "+b.Ref, "Service updated", body)
}

func (n *EmailNotifier) NotifyCancellationCheckout(ctx context.Context, b *domain.Booking, checkoutURL string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>To complete the cancellation of booking <b>%s</b>, please pay the cancellation fee of £%.2f:</p><p><a href=\"%s\">Pay cancellation fee</a></p>",
		b.ClientName, b.Ref, b.CancellationCharge, checkoutURL,
	)
	n.send(ctx, b.ClientEmail, "Cancellation fee due — "+b.Ref, "Cancellation fee due", body)
}

func (n *EmailNotifier) NotifyBookingReminder(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A reminder that your %s appointment at <b>%s</b> is coming up on <b>%s</b>.</p><p>Reference: %s</p>",
		b.ClientName, b.Service, b.PropertyAddress, b.ScheduledAt.Format(whenLayout), b.Ref,
	)
	n.send(ctx, b.ClientEmail, "Upcoming appointment — "+b.Ref, "See you soon", body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, heading, body string) {
	if n.apiKey == "" {
		n.logger.Debug("notification skipped (email disabled)", logger.String("subject", subject))
		return
	}
	if to == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	payload, err := json.Marshal(resendEmail{
		From:    n.from,
		To:      to,
		Bcc:     n.opsBCC,
		Subject: subject,
		Html:    fmt.Sprintf(layout, heading, body),
	})
	if err != nil {
		n.logger.Error("failed to encode email", logger.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		n.logger.Error("failed to build email request", logger.String("error", err.Error()))
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpc.Do(req)
	if err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Error("email provider rejected send",
			logger.String("to", to),
			logger.String("status", resp.Status),
		)
		return
	}

	n.logger.Debug("email sent",
		logger.String("to", to),
		logger.String("subject", subject),
	)
}

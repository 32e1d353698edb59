package domain

import (
	"math"
	"time"
)

// FreeCancellationWindow is how far ahead of the scheduled instant a booking
// can still be cancelled or rescheduled for free.
const FreeCancellationWindow = 24 * time.Hour

// FeeTolerancePence is the allowed difference between a client-supplied fee
// and the server-computed one.
const FeeTolerancePence = 1

type CancellationQuote struct {
	FeePercent  int   `json:"fee_percent"`
	FeePence    int64 `json:"fee_pence"`
	RefundPence int64 `json:"refund_pence"`
}

func (q CancellationQuote) FeePounds() float64    { return Pounds(q.FeePence) }
func (q CancellationQuote) RefundPounds() float64 { return Pounds(q.RefundPence) }

// QuoteCancellation computes the cancellation/modification fee for a booking.
// The boundary is half-open: exactly 24 hours ahead is still free, and the
// moment the scheduled instant is in the past the fee is the full price.
func QuoteCancellation(scheduledAt, now time.Time, totalPrice float64) CancellationQuote {
	total := Pence(totalPrice)
	switch {
	case scheduledAt.Sub(now) >= FreeCancellationWindow:
		return CancellationQuote{FeePercent: 0, FeePence: 0, RefundPence: total}
	case scheduledAt.Before(now):
		return CancellationQuote{FeePercent: 100, FeePence: total, RefundPence: 0}
	default:
		fee := int64(math.Round(float64(total) * 0.5))
		return CancellationQuote{FeePercent: 50, FeePence: fee, RefundPence: total - fee}
	}
}

// FeeMatches checks a client-supplied fee (in pounds) against the expected
// amount within FeeTolerancePence.
func FeeMatches(clientFee float64, expectedPence int64) bool {
	d := Pence(clientFee) - expectedPence
	if d < 0 {
		d = -d
	}
	return d <= FeeTolerancePence
}

// Pence converts a 2-decimal pounds amount from the record store into integer
// pence, rounding half away from zero.
func Pence(pounds float64) int64 {
	return int64(math.Round(pounds * 100))
}

func Pounds(pence int64) float64 {
	return float64(pence) / 100
}

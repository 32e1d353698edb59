package ports

import (
	"context"

	"github.com/pixelplot/ShootBooker/internal/domain"
)

// BookingNotifier sends the transactional emails for booking transitions.
// Sends are best-effort: implementations log failures and never propagate
// them to the caller.
type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingReserved(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, quote domain.CancellationQuote)
	NotifyBookingRescheduled(ctx context.Context, b *domain.Booking)
	NotifyServiceModified(ctx context.Context, b *domain.Booking, deltaPence int64)
	NotifyCancellationCheckout(ctx context.Context, b *domain.Booking, checkoutURL string)
	NotifyBookingReminder(ctx context.Context, b *domain.Booking)
}

package ports

import (
	"context"
	"time"

	"github.com/pixelplot/ShootBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListForReminder(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, ref string) error
}

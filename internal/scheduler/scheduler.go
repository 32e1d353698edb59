package scheduler

import (
	"context"
	"time"

	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingReminder interface {
	RemindUpcoming(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	bookingService bookingReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send shoot reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Info("shoot reminder sent",
			logger.String("ref", b.Ref),
			logger.String("client_email", b.ClientEmail),
			logger.String("scheduled_at", b.ScheduledAt.Format(time.RFC3339)),
		)
	}
}

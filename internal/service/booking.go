package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const refAttempts = 3

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	payments    ports.PaymentProvider
	notifier    ports.BookingNotifier
	locks       *refLocks
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	payments ports.PaymentProvider,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		payments:    payments,
		notifier:    notifier,
		locks:       newRefLocks(),
		logger:      logger,
	}
}

// newBookingRef builds a human-readable reference like SB-20250610-3F7A.
func newBookingRef(scheduledAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return fmt.Sprintf("SB-%s-%s", scheduledAt.Format("20060102"), suffix)
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.CheckoutSession, error) {
	if err := validateCreate(input); err != nil {
		return nil, nil, err
	}

	final := input.TotalPrice - input.DiscountAmount
	if final < 0 {
		final = 0
	}

	canReserve := false
	user, err := s.userRepo.GetByEmail(ctx, input.ClientEmail)
	switch {
	case err == nil:
		canReserve = user.CanReserveWithoutPayment
	case errors.Is(err, domain.ErrUserNotFound):
		// guest checkout, no account needed
	default:
		return nil, nil, fmt.Errorf("check user: %w", err)
	}

	b := &domain.Booking{
		Postcode:        input.Postcode,
		PropertyAddress: input.PropertyAddress,
		Territory:       input.Territory,
		ScheduledAt:     input.ScheduledAt,
		Service:         input.Service,
		Bedrooms:        input.Bedrooms,
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		TotalPrice:      input.TotalPrice,
		DiscountCode:    input.DiscountCode,
		DiscountAmount:  input.DiscountAmount,
		FinalPrice:      final,
		Status:          domain.BookingStatusReserved,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentMethodID: input.PaymentMethodID,
	}
	if canReserve {
		b.PaymentStatus = domain.PaymentStatusReserved
	}

	if err := s.createWithFreshRef(ctx, b); err != nil {
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("ref", b.Ref),
		logger.String("client_email", b.ClientEmail),
		logger.String("service", b.Service),
	)

	if canReserve {
		go s.notifier.NotifyBookingReserved(context.WithoutCancel(ctx), b)
		return b, nil, nil
	}

	sess, err := s.payments.CreateCheckout(ctx, domain.CheckoutInput{
		BookingRef:    b.Ref,
		Kind:          domain.CheckoutKindBooking,
		AmountPence:   domain.Pence(b.FinalPrice),
		ProductName:   fmt.Sprintf("%s at %s", b.Service, b.PropertyAddress),
		CustomerEmail: b.ClientEmail,
	})
	if err != nil {
		s.flagManualReview(ctx, b)
		return nil, nil, fmt.Errorf("create checkout: %w", err)
	}

	b.CheckoutSessionID = sess.ID
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, nil, fmt.Errorf("store checkout id: %w", err)
	}

	go s.notifier.NotifyBookingReserved(context.WithoutCancel(ctx), b)

	return b, sess, nil
}

func (s *BookingService) createWithFreshRef(ctx context.Context, b *domain.Booking) error {
	for i := 0; i < refAttempts; i++ {
		b.Ref = newBookingRef(b.ScheduledAt)
		_, err := s.bookingRepo.GetByRef(ctx, b.Ref)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return s.bookingRepo.Create(ctx, b)
		}
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("could not generate a unique reference")
}

func (s *BookingService) Get(ctx context.Context, ref, clientEmail string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !b.OwnedBy(clientEmail) {
		return nil, domain.ErrNotOwner
	}
	return b, nil
}

// Quote returns the server-computed cancellation fee for the booking.
func (s *BookingService) Quote(ctx context.Context, ref, clientEmail string) (*domain.Booking, domain.CancellationQuote, error) {
	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, domain.CancellationQuote{}, err
	}
	if !b.OwnedBy(clientEmail) {
		return nil, domain.CancellationQuote{}, domain.ErrNotOwner
	}
	if b.Cancelled() {
		return nil, domain.CancellationQuote{}, domain.ErrAlreadyCancelled
	}

	return b, domain.QuoteCancellation(b.ScheduledAt, time.Now(), b.FinalPrice), nil
}

// Cancel is the free cancellation path. Inside the 24 hour window it refuses
// and directs the caller to the fee-bearing path.
func (s *BookingService) Cancel(ctx context.Context, ref, clientEmail, reason string) (*domain.Booking, error) {
	unlock := s.locks.lock(ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if b.Cancelled() {
		return nil, domain.ErrAlreadyCancelled
	}
	if !b.OwnedBy(clientEmail) {
		return nil, domain.ErrNotOwner
	}

	quote := domain.QuoteCancellation(b.ScheduledAt, time.Now(), b.FinalPrice)
	if quote.FeePercent != 0 {
		return nil, domain.ErrFeeRequired
	}

	if err := s.cancel(ctx, b, quote, reason); err != nil {
		return nil, err
	}

	return b, nil
}

// AdminCancel bypasses the ownership check and applies the fee engine: a
// paid booking is refunded its total minus the window fee.
func (s *BookingService) AdminCancel(ctx context.Context, ref, reason string) (*domain.Booking, error) {
	unlock := s.locks.lock(ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if b.Cancelled() {
		return nil, domain.ErrAlreadyCancelled
	}

	quote := domain.QuoteCancellation(b.ScheduledAt, time.Now(), b.FinalPrice)
	if err := s.cancel(ctx, b, quote, reason); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *BookingService) cancel(ctx context.Context, b *domain.Booking, quote domain.CancellationQuote, reason string) error {
	if b.PaymentStatus == domain.PaymentStatusPaid && quote.RefundPence > 0 {
		refundID, err := s.payments.Refund(ctx, b.PaymentIntentID, quote.RefundPence)
		if err != nil {
			s.flagManualReview(ctx, b)
			return fmt.Errorf("refund: %w", err)
		}
		b.RefundID = refundID
		b.PaymentStatus = domain.PaymentStatusRefunded
	}

	now := time.Now().UTC()
	b.Status = domain.BookingStatusCancelled
	b.CancelledAt = &now
	b.CancellationReason = reason
	b.CancellationCharge = quote.FeePounds()

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("ref", b.Ref),
		logger.Int("fee_percent", quote.FeePercent),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), b, quote)

	return nil
}

// CancelWithPayment verifies the client-acknowledged fee. An unpaid booking
// gets a hosted checkout for the fee and is finalised by the payment webhook;
// a paid booking is cancelled immediately with the fee withheld from the
// refund, since the money is already captured.
func (s *BookingService) CancelWithPayment(ctx context.Context, ref, clientEmail string, clientFee float64, reason string) (*domain.Booking, *domain.CheckoutSession, error) {
	unlock := s.locks.lock(ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	if b.Cancelled() {
		return nil, nil, domain.ErrAlreadyCancelled
	}
	if !b.OwnedBy(clientEmail) {
		return nil, nil, domain.ErrNotOwner
	}

	quote := domain.QuoteCancellation(b.ScheduledAt, time.Now(), b.FinalPrice)
	if quote.FeePence == 0 {
		return nil, nil, fmt.Errorf("%w: no fee due, use the free cancellation path", domain.ErrValidation)
	}
	if !domain.FeeMatches(clientFee, quote.FeePence) {
		return nil, nil, domain.ErrFeeMismatch
	}

	if b.PaymentStatus == domain.PaymentStatusPaid {
		if err := s.cancel(ctx, b, quote, reason); err != nil {
			return nil, nil, err
		}
		return b, nil, nil
	}

	sess, err := s.payments.CreateCheckout(ctx, domain.CheckoutInput{
		BookingRef:    b.Ref,
		Kind:          domain.CheckoutKindCancellation,
		AmountPence:   quote.FeePence,
		ProductName:   "Cancellation fee for booking " + b.Ref,
		CustomerEmail: b.ClientEmail,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create cancellation checkout: %w", err)
	}

	b.CheckoutSessionID = sess.ID
	b.CancellationReason = reason
	b.CancellationCharge = quote.FeePounds()
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, nil, fmt.Errorf("update booking: %w", err)
	}

	go s.notifier.NotifyCancellationCheckout(context.WithoutCancel(ctx), b, sess.URL)

	return b, sess, nil
}

func (s *BookingService) Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error) {
	return s.reschedule(ctx, input, false)
}

func (s *BookingService) AdminReschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error) {
	return s.reschedule(ctx, input, true)
}

func (s *BookingService) reschedule(ctx context.Context, input domain.RescheduleInput, admin bool) (*domain.Booking, error) {
	now := time.Now()
	if input.ScheduledAt.Before(now) {
		return nil, fmt.Errorf("%w: new date must be in the future", domain.ErrValidation)
	}

	unlock := s.locks.lock(input.Ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, input.Ref)
	if err != nil {
		return nil, err
	}
	if b.Cancelled() {
		return nil, domain.ErrAlreadyCancelled
	}
	if !admin {
		if !b.OwnedBy(input.ClientEmail) {
			return nil, domain.ErrNotOwner
		}
		if quote := domain.QuoteCancellation(b.ScheduledAt, now, b.FinalPrice); quote.FeePercent != 0 {
			return nil, domain.ErrFeeRequired
		}
	}

	// Keep the first original schedule across repeated reschedules.
	if b.OriginalScheduledAt == nil {
		orig := b.ScheduledAt
		b.OriginalScheduledAt = &orig
	}
	b.ScheduledAt = input.ScheduledAt
	b.ReminderSent = false

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking rescheduled",
		logger.String("ref", b.Ref),
		logger.String("new_date", b.ScheduledAt.Format(time.RFC3339)),
	)

	go s.notifier.NotifyBookingRescheduled(context.WithoutCancel(ctx), b)

	return b, nil
}

func (s *BookingService) ModifyService(ctx context.Context, input domain.ModifyServiceInput) (*domain.Booking, error) {
	return s.modifyService(ctx, input, false)
}

func (s *BookingService) AdminModifyService(ctx context.Context, input domain.ModifyServiceInput) (*domain.Booking, error) {
	return s.modifyService(ctx, input, true)
}

// modifyService swaps the booked service and settles the price delta: a paid
// booking is charged the increase or refunded the decrease. Status does not
// change.
func (s *BookingService) modifyService(ctx context.Context, input domain.ModifyServiceInput, admin bool) (*domain.Booking, error) {
	if input.Service == "" {
		return nil, fmt.Errorf("%w: service is required", domain.ErrValidation)
	}
	if input.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: total_price must not be negative", domain.ErrValidation)
	}

	unlock := s.locks.lock(input.Ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, input.Ref)
	if err != nil {
		return nil, err
	}
	if b.Cancelled() {
		return nil, domain.ErrAlreadyCancelled
	}
	if !admin && !b.OwnedBy(input.ClientEmail) {
		return nil, domain.ErrNotOwner
	}

	deltaPence := domain.Pence(input.TotalPrice) - domain.Pence(b.FinalPrice)

	if b.PaymentStatus == domain.PaymentStatusPaid && deltaPence != 0 {
		if deltaPence > 0 {
			intentID, err := s.payments.Charge(ctx, domain.ChargeInput{
				BookingRef:      b.Ref,
				CustomerID:      b.PaymentCustomerID,
				PaymentMethodID: b.PaymentMethodID,
				AmountPence:     deltaPence,
				Description:     "Service change for booking " + b.Ref,
			})
			if err != nil {
				s.flagManualReview(ctx, b)
				return nil, fmt.Errorf("charge price difference: %w", err)
			}
			b.PaymentIntentID = intentID
		} else {
			refundID, err := s.payments.Refund(ctx, b.PaymentIntentID, -deltaPence)
			if err != nil {
				s.flagManualReview(ctx, b)
				return nil, fmt.Errorf("refund price difference: %w", err)
			}
			b.RefundID = refundID
		}
	}

	b.PreviousService = b.Service
	b.PreviousPrice = b.FinalPrice
	b.Service = input.Service
	b.TotalPrice = input.TotalPrice
	b.FinalPrice = input.TotalPrice

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking service modified",
		logger.String("ref", b.Ref),
		logger.String("service", b.Service),
		logger.Int64("delta_pence", deltaPence),
	)

	go s.notifier.NotifyServiceModified(context.WithoutCancel(ctx), b, deltaPence)

	return b, nil
}

// FinalizeBookingPayment is invoked by the payment webhook after checkout
// completes. Replayed webhook deliveries are no-ops.
func (s *BookingService) FinalizeBookingPayment(ctx context.Context, ref, paymentIntentID string) error {
	unlock := s.locks.lock(ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return err
	}
	if b.PaymentStatus == domain.PaymentStatusPaid {
		s.logger.Info("payment webhook replay ignored", logger.String("ref", ref))
		return nil
	}
	if b.Cancelled() {
		return domain.ErrAlreadyCancelled
	}

	b.Status = domain.BookingStatusConfirmed
	b.PaymentStatus = domain.PaymentStatusPaid
	b.PaymentIntentID = paymentIntentID

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	s.recordSpend(ctx, b)

	s.logger.Info("booking confirmed",
		logger.String("ref", b.Ref),
		logger.String("payment_intent", paymentIntentID),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), b)

	return nil
}

// FinalizeCancellation completes a fee-bearing cancellation after the fee
// checkout succeeds. Replayed webhook deliveries are no-ops.
func (s *BookingService) FinalizeCancellation(ctx context.Context, ref string) error {
	unlock := s.locks.lock(ref)
	defer unlock()

	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return err
	}
	if b.Cancelled() {
		s.logger.Info("cancellation webhook replay ignored", logger.String("ref", ref))
		return nil
	}

	feePence := domain.Pence(b.CancellationCharge)
	quote := domain.CancellationQuote{
		FeePence:    feePence,
		RefundPence: domain.Pence(b.FinalPrice) - feePence,
	}

	return s.cancel(ctx, b, quote, b.CancellationReason)
}

// RemindUpcoming emails clients whose booking falls inside the next 24 hours
// and marks them so the sweep never reminds twice.
func (s *BookingService) RemindUpcoming(ctx context.Context) ([]*domain.Booking, error) {
	now := time.Now()
	due, err := s.bookingRepo.ListForReminder(ctx, now, now.Add(domain.FreeCancellationWindow))
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}

	var reminded []*domain.Booking
	for _, b := range due {
		if err := s.bookingRepo.MarkReminderSent(ctx, b.Ref); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("ref", b.Ref),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.notifier.NotifyBookingReminder(ctx, b)
		reminded = append(reminded, b)
	}

	return reminded, nil
}

func (s *BookingService) recordSpend(ctx context.Context, b *domain.Booking) {
	user, err := s.userRepo.GetByEmail(ctx, b.ClientEmail)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error("failed to load user for spend update",
				logger.String("email", b.ClientEmail),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	user.LifetimeSpend += b.FinalPrice
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to record lifetime spend",
			logger.String("email", b.ClientEmail),
			logger.String("error", err.Error()),
		)
	}
}

// flagManualReview marks the record after a payment bridge failure; there is
// no automatic retry of payment operations.
func (s *BookingService) flagManualReview(ctx context.Context, b *domain.Booking) {
	b.NeedsManualReview = true
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		s.logger.Error("failed to flag booking for manual review",
			logger.String("ref", b.Ref),
			logger.String("error", err.Error()),
		)
	}
}

func validateCreate(input domain.CreateBookingInput) error {
	switch {
	case input.Postcode == "":
		return fmt.Errorf("%w: postcode is required", domain.ErrValidation)
	case input.PropertyAddress == "":
		return fmt.Errorf("%w: property_address is required", domain.ErrValidation)
	case input.Territory == "":
		return fmt.Errorf("%w: territory is required", domain.ErrValidation)
	case input.Service == "":
		return fmt.Errorf("%w: service is required", domain.ErrValidation)
	case input.ClientName == "":
		return fmt.Errorf("%w: client_name is required", domain.ErrValidation)
	case input.ClientEmail == "":
		return fmt.Errorf("%w: client_email is required", domain.ErrValidation)
	case input.ClientPhone == "":
		return fmt.Errorf("%w: client_phone is required", domain.ErrValidation)
	case input.TotalPrice <= 0:
		return fmt.Errorf("%w: total_price must be positive", domain.ErrValidation)
	case input.ScheduledAt.Before(time.Now()):
		return fmt.Errorf("%w: date must be in the future", domain.ErrValidation)
	}
	return nil
}

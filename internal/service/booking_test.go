package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	userRepo    *mocks.MockUserRepo
	payments    *mocks.MockPaymentProvider
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		payments:    mocks.NewMockPaymentProvider(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.userRepo, m.payments, m.notifier, newTestLogger(t))
	return svc, m
}

func validCreateInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Postcode:        "SW1A 1AA",
		PropertyAddress: "1 Example Street, London",
		Territory:       "London Central",
		ScheduledAt:     time.Now().Add(72 * time.Hour),
		Service:         "Photography + Floorplan",
		Bedrooms:        3,
		ClientName:      "Alice Example",
		ClientEmail:     "alice@example.com",
		ClientPhone:     "07700900000",
		TotalPrice:      150,
	}
}

func TestBookingService_Create_GuestGetsCheckout(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.Anything).Return(
		&domain.CheckoutSession{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil,
	)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingReserved(mock.Anything, mock.Anything).Return()

	b, sess, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "cs_123", b.CheckoutSessionID)
	assert.Equal(t, domain.BookingStatusReserved, b.Status)
	assert.Equal(t, domain.PaymentStatusPending, b.PaymentStatus)
	assert.Regexp(t, `^SB-\d{8}-[0-9A-F]{4}$`, b.Ref)
	assert.Equal(t, float64(150), b.FinalPrice)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_PrivilegedSkipsCheckout(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(
		&domain.User{Email: "alice@example.com", CanReserveWithoutPayment: true}, nil,
	)
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingReserved(mock.Anything, mock.Anything).Return()

	b, sess, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, domain.PaymentStatusReserved, b.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_AppliesDiscount(t *testing.T) {
	svc, m := newBookingService(t)

	input := validCreateInput()
	input.DiscountCode = "SPRING10"
	input.DiscountAmount = 15

	m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.MatchedBy(func(in domain.CheckoutInput) bool {
		return in.AmountPence == 13500 && in.Kind == domain.CheckoutKindBooking
	})).Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingReserved(mock.Anything, mock.Anything).Return()

	b, _, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, float64(135), b.FinalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_ValidationError(t *testing.T) {
	svc, _ := newBookingService(t)

	input := validCreateInput()
	input.ClientEmail = ""

	_, _, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_CheckoutFailureFlagsReview(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.Anything).Return(nil, errors.New("stripe down"))
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.NeedsManualReview
	})).Return(nil)

	_, _, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
}

func TestBookingService_Get_OwnershipEnforced(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{Ref: "SB-1", ClientEmail: "alice@example.com"}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, err := svc.Get(context.Background(), "SB-1", "mallory@example.com")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestBookingService_Get_EmailCaseInsensitive(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{Ref: "SB-1", ClientEmail: "alice@example.com"}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	got, err := svc.Get(context.Background(), "SB-1", "Alice@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBookingService_Cancel_FreeOutsideWindow(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Status:      domain.BookingStatusReserved,
		FinalPrice:  150,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := svc.Cancel(context.Background(), "SB-1", "alice@example.com", "change of plans")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.NotNil(t, got.CancelledAt)
	assert.Equal(t, "change of plans", got.CancellationReason)
	assert.Equal(t, float64(0), got.CancellationCharge)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_RefundsPaidBooking(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:             "SB-1",
		ClientEmail:     "alice@example.com",
		ScheduledAt:     time.Now().Add(48 * time.Hour),
		Status:          domain.BookingStatusConfirmed,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: "pi_123",
		FinalPrice:      150,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.payments.EXPECT().Refund(mock.Anything, "pi_123", int64(15000)).Return("re_1", nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := svc.Cancel(context.Background(), "SB-1", "alice@example.com", "")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)
	assert.Equal(t, "re_1", got.RefundID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_InsideWindowNeedsFee(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(2 * time.Hour),
		FinalPrice:  150,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, err := svc.Cancel(context.Background(), "SB-1", "alice@example.com", "")

	assert.ErrorIs(t, err, domain.ErrFeeRequired)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		Status:      domain.BookingStatusCancelled,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, err := svc.Cancel(context.Background(), "SB-1", "alice@example.com", "")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_AdminCancel_AppliesFeeToRefund(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:             "SB-1",
		ClientEmail:     "alice@example.com",
		ScheduledAt:     time.Now().Add(2 * time.Hour),
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: "pi_123",
		FinalPrice:      120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.payments.EXPECT().Refund(mock.Anything, "pi_123", int64(6000)).Return("re_1", nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := svc.AdminCancel(context.Background(), "SB-1", "client no-show risk")

	require.NoError(t, err)
	assert.Equal(t, float64(60), got.CancellationCharge)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelWithPayment_OpensFeeCheckout(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(2 * time.Hour),
		Status:      domain.BookingStatusReserved,
		FinalPrice:  120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.MatchedBy(func(in domain.CheckoutInput) bool {
		return in.Kind == domain.CheckoutKindCancellation && in.AmountPence == 6000
	})).Return(&domain.CheckoutSession{ID: "cs_fee", URL: "https://pay.example/cs_fee"}, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyCancellationCheckout(mock.Anything, mock.Anything, "https://pay.example/cs_fee").Return()

	_, sess, err := svc.CancelWithPayment(context.Background(), "SB-1", "alice@example.com", 60, "emergency")

	require.NoError(t, err)
	assert.Equal(t, "cs_fee", sess.ID)
	assert.Equal(t, "cs_fee", b.CheckoutSessionID)
	assert.Equal(t, float64(60), b.CancellationCharge)
	assert.Equal(t, "emergency", b.CancellationReason)
	// Not cancelled until the webhook lands.
	assert.Equal(t, domain.BookingStatusReserved, b.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelWithPayment_PaidWithholdsFeeFromRefund(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:             "SB-1",
		ClientEmail:     "alice@example.com",
		ScheduledAt:     time.Now().Add(2 * time.Hour),
		Status:          domain.BookingStatusConfirmed,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: "pi_123",
		FinalPrice:      120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	// The fee comes out of the captured payment, never a second checkout.
	m.payments.EXPECT().Refund(mock.Anything, "pi_123", int64(6000)).Return("re_1", nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	got, sess, err := svc.CancelWithPayment(context.Background(), "SB-1", "alice@example.com", 60, "emergency")

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)
	assert.Equal(t, "re_1", got.RefundID)
	assert.Equal(t, float64(60), got.CancellationCharge)
	m.payments.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelWithPayment_FeeMismatch(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(2 * time.Hour),
		FinalPrice:  120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, _, err := svc.CancelWithPayment(context.Background(), "SB-1", "alice@example.com", 30, "")

	assert.ErrorIs(t, err, domain.ErrFeeMismatch)
}

func TestBookingService_CancelWithPayment_NoFeeDue(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(72 * time.Hour),
		FinalPrice:  120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, _, err := svc.CancelWithPayment(context.Background(), "SB-1", "alice@example.com", 60, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Reschedule_OutsideWindow(t *testing.T) {
	svc, m := newBookingService(t)

	originalDate := time.Now().Add(72 * time.Hour)
	newDate := time.Now().Add(96 * time.Hour)
	b := &domain.Booking{
		Ref:          "SB-1",
		ClientEmail:  "alice@example.com",
		ScheduledAt:  originalDate,
		FinalPrice:   120,
		ReminderSent: true,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingRescheduled(mock.Anything, mock.Anything).Return()

	got, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: newDate,
	})

	require.NoError(t, err)
	assert.Equal(t, newDate, got.ScheduledAt)
	require.NotNil(t, got.OriginalScheduledAt)
	assert.Equal(t, originalDate, *got.OriginalScheduledAt)
	assert.False(t, got.ReminderSent)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_KeepsFirstOriginalDate(t *testing.T) {
	svc, m := newBookingService(t)

	firstOriginal := time.Now().Add(48 * time.Hour)
	b := &domain.Booking{
		Ref:                 "SB-1",
		ClientEmail:         "alice@example.com",
		ScheduledAt:         time.Now().Add(72 * time.Hour),
		OriginalScheduledAt: &firstOriginal,
		FinalPrice:          120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingRescheduled(mock.Anything, mock.Anything).Return()

	got, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(96 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, firstOriginal, *got.OriginalScheduledAt)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_InsideWindowNeedsFee(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(2 * time.Hour),
		FinalPrice:  120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	_, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(96 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrFeeRequired)
}

func TestBookingService_AdminReschedule_BypassesWindow(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(2 * time.Hour),
		FinalPrice:  120,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingRescheduled(mock.Anything, mock.Anything).Return()

	_, err := svc.AdminReschedule(context.Background(), domain.RescheduleInput{
		Ref:         "SB-1",
		ScheduledAt: time.Now().Add(96 * time.Hour),
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_PastDateRejected(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		ScheduledAt: time.Now().Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ModifyService_UpgradeChargesDifference(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:               "SB-1",
		ClientEmail:       "alice@example.com",
		ScheduledAt:       time.Now().Add(72 * time.Hour),
		Service:           "Photography",
		TotalPrice:        120,
		FinalPrice:        120,
		PaymentStatus:     domain.PaymentStatusPaid,
		PaymentCustomerID: "cus_1",
		PaymentMethodID:   "pm_1",
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.payments.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(in domain.ChargeInput) bool {
		return in.AmountPence == 3000 && in.CustomerID == "cus_1" && in.PaymentMethodID == "pm_1"
	})).Return("pi_2", nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyServiceModified(mock.Anything, mock.Anything, int64(3000)).Return()

	got, err := svc.ModifyService(context.Background(), domain.ModifyServiceInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		Service:     "Photography + Video",
		TotalPrice:  150,
	})

	require.NoError(t, err)
	assert.Equal(t, "Photography + Video", got.Service)
	assert.Equal(t, float64(150), got.FinalPrice)
	assert.Equal(t, "Photography", got.PreviousService)
	assert.Equal(t, float64(120), got.PreviousPrice)
	assert.Equal(t, "pi_2", got.PaymentIntentID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ModifyService_DowngradeRefundsDifference(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:             "SB-1",
		ClientEmail:     "alice@example.com",
		ScheduledAt:     time.Now().Add(72 * time.Hour),
		Service:         "Photography + Video",
		TotalPrice:      150,
		FinalPrice:      150,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: "pi_1",
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.payments.EXPECT().Refund(mock.Anything, "pi_1", int64(3000)).Return("re_1", nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyServiceModified(mock.Anything, mock.Anything, int64(-3000)).Return()

	got, err := svc.ModifyService(context.Background(), domain.ModifyServiceInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		Service:     "Photography",
		TotalPrice:  120,
	})

	require.NoError(t, err)
	assert.Equal(t, "re_1", got.RefundID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ModifyService_UnpaidSkipsSettlement(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:           "SB-1",
		ClientEmail:   "alice@example.com",
		ScheduledAt:   time.Now().Add(72 * time.Hour),
		Service:       "Photography",
		TotalPrice:    120,
		FinalPrice:    120,
		PaymentStatus: domain.PaymentStatusPending,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyServiceModified(mock.Anything, mock.Anything, int64(3000)).Return()

	_, err := svc.ModifyService(context.Background(), domain.ModifyServiceInput{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		Service:     "Photography + Video",
		TotalPrice:  150,
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_FinalizeBookingPayment_ConfirmsAndRecordsSpend(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:         "SB-1",
		ClientEmail: "alice@example.com",
		Status:      domain.BookingStatusReserved,
		FinalPrice:  150,
	}
	user := &domain.User{Email: "alice@example.com", LifetimeSpend: 300}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	m.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything).Return()

	err := svc.FinalizeBookingPayment(context.Background(), "SB-1", "pi_99")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, domain.PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, "pi_99", b.PaymentIntentID)
	assert.Equal(t, float64(450), user.LifetimeSpend)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_FinalizeBookingPayment_ReplayIsNoop(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:           "SB-1",
		ClientEmail:   "alice@example.com",
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	err := svc.FinalizeBookingPayment(context.Background(), "SB-1", "pi_99")

	require.NoError(t, err)
}

func TestBookingService_FinalizeCancellation_CompletesFeeCancellation(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{
		Ref:                "SB-1",
		ClientEmail:        "alice@example.com",
		Status:             domain.BookingStatusReserved,
		FinalPrice:         120,
		CancellationCharge: 60,
		CancellationReason: "emergency",
	}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.FinalizeCancellation(context.Background(), "SB-1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	assert.Equal(t, "emergency", b.CancellationReason)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_FinalizeCancellation_ReplayIsNoop(t *testing.T) {
	svc, m := newBookingService(t)

	b := &domain.Booking{Ref: "SB-1", Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "SB-1").Return(b, nil)

	err := svc.FinalizeCancellation(context.Background(), "SB-1")

	require.NoError(t, err)
}

func TestBookingService_RemindUpcoming(t *testing.T) {
	svc, m := newBookingService(t)

	due := []*domain.Booking{
		{Ref: "SB-1", ClientEmail: "alice@example.com"},
		{Ref: "SB-2", ClientEmail: "bob@example.com"},
	}
	m.bookingRepo.EXPECT().ListForReminder(mock.Anything, mock.Anything, mock.Anything).Return(due, nil)
	m.bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "SB-1").Return(nil)
	m.bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "SB-2").Return(errors.New("store error"))
	m.notifier.EXPECT().NotifyBookingReminder(mock.Anything, due[0]).Return()

	reminded, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, reminded, 1)
	assert.Equal(t, "SB-1", reminded[0].Ref)
}

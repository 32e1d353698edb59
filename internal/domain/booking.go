package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "Reserved"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusReserved PaymentStatus = "Reserved"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

type Booking struct {
	// RecordID is the record store's row identifier; empty until persisted.
	RecordID string `json:"-"`
	Ref      string `json:"ref"`

	Postcode        string    `json:"postcode"`
	PropertyAddress string    `json:"property_address"`
	Territory       string    `json:"territory"`
	ScheduledAt     time.Time `json:"scheduled_at"`

	Service  string `json:"service"`
	Bedrooms int    `json:"bedrooms"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	TotalPrice     float64 `json:"total_price"`
	DiscountCode   string  `json:"discount_code,omitempty"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	FinalPrice     float64 `json:"final_price"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	PaymentCustomerID string `json:"-"`
	PaymentMethodID   string `json:"-"`
	PaymentIntentID   string `json:"-"`
	RefundID          string `json:"-"`
	CheckoutSessionID string `json:"-"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancellationCharge float64    `json:"cancellation_charge,omitempty"`

	OriginalScheduledAt *time.Time `json:"original_scheduled_at,omitempty"`
	PreviousService     string     `json:"previous_service,omitempty"`
	PreviousPrice       float64    `json:"previous_price,omitempty"`

	ReminderSent      bool `json:"reminder_sent"`
	NeedsManualReview bool `json:"needs_manual_review"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) Cancelled() bool {
	return b.Status == BookingStatusCancelled
}

// OwnedBy reports whether the requester's email matches the booking's stored
// client email. Comparison is case-insensitive.
func (b *Booking) OwnedBy(email string) bool {
	return email != "" && strings.EqualFold(b.ClientEmail, email)
}

type CreateBookingInput struct {
	Postcode        string
	PropertyAddress string
	Territory       string
	ScheduledAt     time.Time
	Service         string
	Bedrooms        int
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	TotalPrice      float64
	DiscountCode    string
	DiscountAmount  float64
	PaymentMethodID string
}

type RescheduleInput struct {
	Ref         string
	ClientEmail string
	ScheduledAt time.Time
}

type ModifyServiceInput struct {
	Ref         string
	ClientEmail string
	Service     string
	TotalPrice  float64
}

// CombineDateTime merges the record store's separate date and time fields
// into a single instant in the business timezone.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

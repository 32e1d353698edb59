package dto

import (
	"time"

	"github.com/pixelplot/ShootBooker/internal/domain"
)

type BookingResponse struct {
	Ref             string  `json:"ref"`
	Postcode        string  `json:"postcode"`
	PropertyAddress string  `json:"property_address"`
	Territory       string  `json:"territory"`
	ScheduledAt     string  `json:"scheduled_at"`
	Service         string  `json:"service"`
	Bedrooms        int     `json:"bedrooms"`
	ClientName      string  `json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	TotalPrice      float64 `json:"total_price"`
	DiscountAmount  float64 `json:"discount_amount,omitempty"`
	FinalPrice      float64 `json:"final_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`

	CancelledAt         string  `json:"cancelled_at,omitempty"`
	CancellationReason  string  `json:"cancellation_reason,omitempty"`
	CancellationCharge  float64 `json:"cancellation_charge,omitempty"`
	OriginalScheduledAt string  `json:"original_scheduled_at,omitempty"`
	PreviousService     string  `json:"previous_service,omitempty"`
	PreviousPrice       float64 `json:"previous_price,omitempty"`

	CreatedAt string `json:"created_at"`
}

type CreateBookingResponse struct {
	Booking    BookingResponse `json:"booking"`
	PaymentURL string          `json:"payment_url,omitempty"`
}

type QuoteResponse struct {
	Ref        string  `json:"ref"`
	FeePercent int     `json:"fee_percent"`
	Fee        float64 `json:"fee"`
	Refund     float64 `json:"refund"`
}

type CheckoutResponse struct {
	SessionID  string `json:"session_id"`
	PaymentURL string `json:"payment_url"`
}

type UserResponse struct {
	Email                    string `json:"email"`
	Name                     string `json:"name"`
	Role                     string `json:"role"`
	Status                   string `json:"status"`
	PointsBalance            int    `json:"points_balance"`
	CanReserveWithoutPayment bool   `json:"can_reserve_without_payment"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UploadLinkResponse struct {
	URL string `json:"url"`
}

type ReportCopyResponse struct {
	Copy string `json:"copy"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		Ref:                b.Ref,
		Postcode:           b.Postcode,
		PropertyAddress:    b.PropertyAddress,
		Territory:          b.Territory,
		ScheduledAt:        b.ScheduledAt.Format(time.RFC3339),
		Service:            b.Service,
		Bedrooms:           b.Bedrooms,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		TotalPrice:         b.TotalPrice,
		DiscountAmount:     b.DiscountAmount,
		FinalPrice:         b.FinalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CancellationCharge: b.CancellationCharge,
		PreviousService:    b.PreviousService,
		PreviousPrice:      b.PreviousPrice,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	if b.OriginalScheduledAt != nil {
		resp.OriginalScheduledAt = b.OriginalScheduledAt.Format(time.RFC3339)
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Email:                    u.Email,
		Name:                     u.Name,
		Role:                     string(u.Role),
		Status:                   string(u.Status),
		PointsBalance:            u.PointsBalance(),
		CanReserveWithoutPayment: u.CanReserveWithoutPayment,
	}
}

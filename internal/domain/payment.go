package domain

type CheckoutKind string

const (
	CheckoutKindBooking      CheckoutKind = "booking"
	CheckoutKindCancellation CheckoutKind = "cancellation"
)

// ChargeInput describes an immediate off-session charge against a stored
// payment method.
type ChargeInput struct {
	BookingRef      string
	CustomerID      string
	PaymentMethodID string
	AmountPence     int64
	Currency        string
	Description     string
}

// CheckoutInput describes a hosted checkout session for deferred collection.
type CheckoutInput struct {
	BookingRef    string
	Kind          CheckoutKind
	AmountPence   int64
	Currency      string
	ProductName   string
	CustomerEmail string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

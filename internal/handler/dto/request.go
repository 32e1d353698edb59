package dto

type CreateBookingRequest struct {
	Postcode        string  `json:"postcode" binding:"required"`
	PropertyAddress string  `json:"property_address" binding:"required"`
	Territory       string  `json:"territory" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Service         string  `json:"service" binding:"required"`
	Bedrooms        int     `json:"bedrooms"`
	ClientName      string  `json:"client_name" binding:"required"`
	ClientEmail     string  `json:"client_email" binding:"required,email"`
	ClientPhone     string  `json:"client_phone" binding:"required"`
	TotalPrice      float64 `json:"total_price" binding:"required,gt=0"`
	DiscountCode    string  `json:"discount_code"`
	DiscountAmount  float64 `json:"discount_amount"`
	PaymentMethodID string  `json:"payment_method_id"`
}

type CancelRequest struct {
	ClientEmail string `json:"client_email" binding:"required,email"`
	Reason      string `json:"reason"`
}

type CancelWithPaymentRequest struct {
	ClientEmail     string  `json:"client_email" binding:"required,email"`
	CancellationFee float64 `json:"cancellation_fee" binding:"required,gt=0"`
	Reason          string  `json:"reason" binding:"required"`
}

type RescheduleRequest struct {
	ClientEmail string `json:"client_email" binding:"required,email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type ModifyServiceRequest struct {
	ClientEmail string  `json:"client_email" binding:"required,email"`
	Service     string  `json:"service" binding:"required"`
	TotalPrice  float64 `json:"total_price" binding:"required,gt=0"`
}

type AdminCancelRequest struct {
	Reason string `json:"reason"`
}

type AdminRescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type AdminModifyServiceRequest struct {
	Service    string  `json:"service" binding:"required"`
	TotalPrice float64 `json:"total_price" binding:"required,gt=0"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RedeemPointsRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Points int    `json:"points" binding:"required,gt=0"`
}

type AdjustPointsRequest struct {
	Email string `json:"email" binding:"required,email"`
	Delta int    `json:"delta" binding:"required"`
}

type ReportCopyRequest struct {
	PropertyAddress string `json:"property_address" binding:"required"`
	Service         string `json:"service" binding:"required"`
	Bedrooms        int    `json:"bedrooms"`
	Highlights      string `json:"highlights"`
}

package repository

// Canonical record store field labels. The store's schema drifted over time
// ("Service" vs "Service Name"); every read and write in this package goes
// through this one set so no handler can disagree about a label.
const (
	fldRef             = "Booking Ref"
	fldPostcode        = "Postcode"
	fldAddress         = "Property Address"
	fldTerritory       = "Territory"
	fldDate            = "Date"
	fldTime            = "Time"
	fldService         = "Service"
	fldBedrooms        = "Bedrooms"
	fldClientName      = "Client Name"
	fldClientEmail     = "Client Email"
	fldClientPhone     = "Client Phone"
	fldTotalPrice      = "Total Price"
	fldDiscountCode    = "Discount Code"
	fldDiscountAmount  = "Discount Amount"
	fldFinalPrice      = "Final Price"
	fldBookingStatus   = "Booking Status"
	fldPaymentStatus   = "Payment Status"
	fldCustomerID      = "Stripe Customer ID"
	fldPaymentMethodID = "Payment Method ID"
	fldPaymentIntentID = "Payment Intent ID"
	fldRefundID        = "Refund ID"
	fldCheckoutID      = "Checkout Session ID"
	fldCancelDate      = "Cancellation Date"
	fldCancelReason    = "Cancellation Reason"
	fldCancelCharge    = "Cancellation Charge"
	fldOriginalDate    = "Original Date"
	fldOriginalTime    = "Original Time"
	fldPrevService     = "Previous Service"
	fldPrevPrice       = "Previous Price"
	fldReminderSent    = "Reminder Sent"
	fldManualReview    = "Needs Manual Review"
	fldCreatedAt       = "Created At"
	fldUpdatedAt       = "Updated At"
)

const (
	fldUserEmail        = "Email"
	fldUserPasswordHash = "Password Hash"
	fldUserName         = "Name"
	fldUserPhone        = "Phone"
	fldUserRole         = "Role"
	fldUserStatus       = "Account Status"
	fldUserPointsManual = "Points Manual"
	fldUserPointsUsed   = "Points Redeemed"
	fldUserSpend        = "Lifetime Spend"
	fldUserCanReserve   = "Reserve Without Payment"
	fldUserCreatedAt    = "Created At"
)

func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func fieldFloat(fields map[string]interface{}, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

func fieldInt(fields map[string]interface{}, key string) int {
	return int(fieldFloat(fields, key))
}

func fieldBool(fields map[string]interface{}, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}

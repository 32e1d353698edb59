package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("no addresses found for postcode")
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotOwner         = errors.New("client email does not match booking")
	ErrFeeRequired      = errors.New("booking is within the 24 hour window, a cancellation fee applies")
	ErrFeeMismatch      = errors.New("cancellation fee does not match the expected amount")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInsufficientPoints = errors.New("insufficient points balance")
)

var (
	ErrValidation = errors.New("validation error")
)

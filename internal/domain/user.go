package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusDisabled UserStatus = "Disabled"
)

type User struct {
	RecordID     string     `json:"-"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`

	// Loyalty points: manual adjustments plus one point per pound of
	// historical spend, minus what has been redeemed.
	PointsManual   int     `json:"points_manual"`
	PointsRedeemed int     `json:"points_redeemed"`
	LifetimeSpend  float64 `json:"lifetime_spend"`

	// CanReserveWithoutPayment lets the client hold bookings without an
	// upfront checkout session.
	CanReserveWithoutPayment bool `json:"can_reserve_without_payment"`

	CreatedAt time.Time `json:"created_at"`
}

func (u *User) PointsBalance() int {
	return u.PointsManual + int(u.LifetimeSpend) - u.PointsRedeemed
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	got, err := CombineDateTime("2025-06-10", "14:00", london)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, london), got)
}

func TestCombineDateTime_Invalid(t *testing.T) {
	_, err := CombineDateTime("10/06/2025", "14:00", time.UTC)
	assert.Error(t, err)

	_, err = CombineDateTime("2025-06-10", "2pm", time.UTC)
	assert.Error(t, err)
}

func TestBooking_OwnedBy(t *testing.T) {
	b := &Booking{ClientEmail: "alice@example.com"}

	assert.True(t, b.OwnedBy("alice@example.com"))
	assert.True(t, b.OwnedBy("Alice@Example.COM"))
	assert.False(t, b.OwnedBy("bob@example.com"))
	assert.False(t, b.OwnedBy(""))
}

func TestUser_PointsBalance(t *testing.T) {
	u := &User{PointsManual: 50, LifetimeSpend: 300.75, PointsRedeemed: 100}

	assert.Equal(t, 250, u.PointsBalance())
}

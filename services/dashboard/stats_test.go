package dashboard_test

import (
	"testing"
	"time"

	bookingModel "car-rental-booking/models/booking"
	"car-rental-booking/services/dashboard"

	"github.com/stretchr/testify/assert"
)

func TestComputeAggregates(t *testing.T) {
	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		{ID: 3, TotalBill: 3000, Status: bookingModel.BookingStatusCancelled, CreatedAt: ts.Add(-1 * time.Hour)},
		{ID: 2, TotalBill: 2700, Status: bookingModel.BookingStatusConfirmed, CreatedAt: ts.Add(-2 * time.Hour)},
		{ID: 1, TotalBill: 1500, Status: bookingModel.BookingStatusPending, CreatedAt: ts.AddDate(0, 0, -1)},
	}

	stats := dashboard.Compute(bookings, ts)

	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 7200.0, stats.Revenue)
	assert.Equal(t, "₹ 7,200", stats.RevenueDisplay)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Pickups)
	assert.Equal(t, 0, stats.Returns)
	assert.Equal(t, 2, stats.TodayBookings)
}

func TestComputeEmpty(t *testing.T) {
	stats := dashboard.Compute(nil, time.Now())

	assert.Equal(t, 0, stats.TotalBookings)
	assert.Equal(t, 0.0, stats.Revenue)
	assert.Equal(t, "₹ 0", stats.RevenueDisplay)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 0, stats.Confirmed)
}

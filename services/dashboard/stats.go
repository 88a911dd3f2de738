package dashboard

import (
	"time"

	bookingModel "car-rental-booking/models/booking"
	"car-rental-booking/utils"

	"github.com/jinzhu/now"
)

// Stats holds the dashboard aggregates computed from the full booking list.
type Stats struct {
	TotalBookings  int     `json:"total_bookings"`
	Revenue        float64 `json:"revenue"`
	RevenueDisplay string  `json:"revenue_display"`
	Pending        int     `json:"pending"`
	Confirmed      int     `json:"confirmed"`
	Pickups        int     `json:"pickups"`
	Returns        int     `json:"returns"`
	TodayBookings  int     `json:"today_bookings"`
}

// Compute aggregates the booking rows. Read-only; ts anchors the "today"
// window.
func Compute(bookings []bookingModel.Booking, ts time.Time) Stats {
	stats := Stats{TotalBookings: len(bookings)}

	dayStart := now.With(ts).BeginningOfDay()
	dayEnd := now.With(ts).EndOfDay()

	for _, b := range bookings {
		stats.Revenue += b.TotalBill

		switch b.Status {
		case bookingModel.BookingStatusPending:
			stats.Pending++
		case bookingModel.BookingStatusConfirmed:
			stats.Confirmed++
		}

		if !b.CreatedAt.Before(dayStart) && !b.CreatedAt.After(dayEnd) {
			stats.TodayBookings++
		}
	}

	// Pickups mirrors the confirmed count; returns are not tracked.
	stats.Pickups = stats.Confirmed
	stats.RevenueDisplay = utils.FormatCurrency(stats.Revenue)

	return stats
}

package booking_test

import (
	"testing"

	bookingModel "car-rental-booking/models/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatusForAction(t *testing.T) {
	assert.Equal(t, bookingModel.BookingStatusConfirmed, bookingModel.StatusForAction("approve"))
	assert.Equal(t, bookingModel.BookingStatusReupload, bookingModel.StatusForAction("reupload"))
	assert.Equal(t, bookingModel.BookingStatusCancelled, bookingModel.StatusForAction("cancel"))
}

func TestStatusForActionFallsBackToPending(t *testing.T) {
	assert.Equal(t, bookingModel.BookingStatusPending, bookingModel.StatusForAction(""))
	assert.Equal(t, bookingModel.BookingStatusPending, bookingModel.StatusForAction("delete"))
	assert.Equal(t, bookingModel.BookingStatusPending, bookingModel.StatusForAction("APPROVE"))
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range bookingModel.GetAllBookingStatuses() {
		assert.True(t, status.IsValid(), "status %q", status)
	}
	assert.False(t, bookingModel.BookingStatus("Draft").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, bookingModel.BookingStatusConfirmed.IsTerminal())
	assert.True(t, bookingModel.BookingStatusCancelled.IsTerminal())
	assert.False(t, bookingModel.BookingStatusPending.IsTerminal())
	assert.False(t, bookingModel.BookingStatusReupload.IsTerminal())
}

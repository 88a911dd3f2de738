package booking

import "car-rental-booking/constants"

// BookingStatus is the lifecycle state of a booking row.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending Approval"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusReupload  BookingStatus = "Reupload Requested"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusReupload, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further verification action applies.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusConfirmed || bs == BookingStatusCancelled
}

// StatusForAction maps a verification action token to the resulting status.
// Unknown or missing tokens fall back to Pending Approval.
func StatusForAction(action string) BookingStatus {
	switch action {
	case constants.ActionApprove:
		return BookingStatusConfirmed
	case constants.ActionReupload:
		return BookingStatusReupload
	case constants.ActionCancel:
		return BookingStatusCancelled
	default:
		return BookingStatusPending
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusReupload,
		BookingStatusCancelled,
	}
}

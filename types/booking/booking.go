package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// BookingCreateRequest represents the request payload for creating a booking.
// TollCharge arrives as a string so the toll policy can tell an absent field
// apart from a malformed one.
type BookingCreateRequest struct {
	FirstName  string `json:"first_name" form:"first_name"`
	LastName   string `json:"last_name" form:"last_name"`
	Duration   string `json:"duration" form:"duration"`
	TollCharge string `json:"toll_charge" form:"toll_charge"`
	NationalID string `json:"national_id" form:"national_id"`
	LicenseNo  string `json:"license_no" form:"license_no"`
}

func (b BookingCreateRequest) Validate() error {
	if strings.TrimSpace(b.FirstName) == "" {
		return fmt.Errorf("first_name is required")
	}
	if strings.TrimSpace(b.Duration) == "" {
		return fmt.Errorf("duration is required")
	}
	return nil
}

// ParseTollCharge applies the toll policy: an absent or empty field defaults
// to 0, a present but non-numeric value is a validation error, negatives are
// rejected.
func (b BookingCreateRequest) ParseTollCharge() (float64, error) {
	raw := strings.TrimSpace(b.TollCharge)
	if raw == "" {
		return 0, nil
	}
	toll, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("toll_charge must be numeric")
	}
	if toll < 0 {
		return 0, fmt.Errorf("toll_charge must not be negative")
	}
	return toll, nil
}

// CustomerName joins the name parts the way the booking row stores them.
func (b BookingCreateRequest) CustomerName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// VerifyRequest applies a verification action to a specific booking. The
// booking id comes back from the create step; the handler never guesses at
// the most recent row.
type VerifyRequest struct {
	BookingID uint   `json:"booking_id" form:"booking_id"`
	Action    string `json:"action" form:"action"`
}

func (v VerifyRequest) Validate() error {
	if v.BookingID == 0 {
		return fmt.Errorf("booking_id is required")
	}
	return nil
}

// PendingCustomerInfo is the ephemeral identity record captured at booking
// time and shown on the verification page. It never reaches the bookings
// table.
type PendingCustomerInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	LicenseNo  string `json:"license_no"`
}

// SentinelPendingInfo is the placeholder shown when nothing is pending.
func SentinelPendingInfo() PendingCustomerInfo {
	return PendingCustomerInfo{
		FirstName:  "Unknown",
		LastName:   "",
		NationalID: "N/A",
		LicenseNo:  "N/A",
	}
}

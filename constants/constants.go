package constants

// Booking defaults
const (
	DefaultCarModel  = "Toyota Innova"
	PickupDateLayout = "2006-01-02 03:04 PM"
)

// Rental duration tiers and their base rates
const (
	DurationShort = "12"

	BaseRateShort = 1500.0
	BaseRateLong  = 2500.0
)

// Verification action tokens
const (
	ActionApprove  = "approve"
	ActionReupload = "reupload"
	ActionCancel   = "cancel"
)

// Session cookie
const (
	AccessCookieName = "access"
	AccessTokenTTL   = 8 * 60 * 60 // seconds
)

package pricing

import "car-rental-booking/constants"

// BaseRate returns the duration-tier price component before tolls are added.
func BaseRate(duration string) float64 {
	if duration == constants.DurationShort {
		return constants.BaseRateShort
	}
	return constants.BaseRateLong
}

// Calculate returns the total bill for a rental: the duration-tier base rate
// plus the toll charge. Pure; malformed numeric input is rejected upstream.
func Calculate(duration string, tollCharge float64) float64 {
	return BaseRate(duration) + tollCharge
}

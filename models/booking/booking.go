package booking

import (
	"time"

	"car-rental-booking/models/user"
)

// Booking represents a single rental request with its lifecycle status.
// TotalBill is priced once at creation and never re-derived.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CustomerName string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CarModel     string        `gorm:"type:varchar(255);not null" json:"car_model"`
	PickupDate   string        `gorm:"type:varchar(50);not null" json:"pickup_date"`
	TotalBill    float64       `gorm:"not null" json:"total_bill"`
	Status       BookingStatus `gorm:"type:varchar(50);not null" json:"status"`
	Duration     string        `gorm:"type:varchar(20);not null" json:"duration"`
	TollCharge   float64       `gorm:"not null;default:0" json:"toll_charge"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

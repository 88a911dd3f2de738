package user

import (
	"errors"
	"time"
)

// Signup failure kinds surfaced to callers.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// User is an account row. The password column holds the string given at
// signup and login compares it verbatim; known weakness, see DESIGN.md.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);not null;unique" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

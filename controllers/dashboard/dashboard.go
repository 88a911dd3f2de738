package dashboard

import (
	"time"

	"car-rental-booking/logger"
	bookingModel "car-rental-booking/models/booking"
	dashboardService "car-rental-booking/services/dashboard"
	"car-rental-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves the aggregate booking view
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Index returns the full booking list, most recent first, with the aggregate
// stats computed over it. Read-only.
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := dc.DB.Order("id DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	stats := dashboardService.Compute(bookings, time.Now())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard loaded",
		Data: map[string]interface{}{
			"bookings": bookings,
			"stats":    stats,
		},
	})
}

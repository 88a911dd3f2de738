package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"car-rental-booking/constants"
	"car-rental-booking/logger"
	"car-rental-booking/middleware"
	bookingModel "car-rental-booking/models/booking"
	"car-rental-booking/services/pricing"
	"car-rental-booking/session"
	"car-rental-booking/types"
	bookingTypes "car-rental-booking/types/booking"
	"car-rental-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB       *gorm.DB
	Sessions *session.Store
	Logger   *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, sessions *session.Store, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:       db,
		Sessions: sessions,
		Logger:   asyncLogger,
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

// Store creates a new booking priced at submission time and parks the
// customer identity record for the verification step.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	username, ok := middleware.SessionUsername(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	tollCharge, err := req.ParseTollCharge()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	userInfo, err := utils.GetUserByUsername(username)
	if err != nil {
		logger.Error("Error finding user by username", err)
		status := fiber.StatusInternalServerError
		msg := "Database error"
		if err.Error() == "user not found" {
			status = fiber.StatusUnauthorized
			msg = "User not found"
		}
		return c.Status(status).JSON(types.ApiResponse{
			Status:  status,
			Message: msg,
			Data:    nil,
		})
	}

	totalBill := pricing.Calculate(req.Duration, tollCharge)

	var newBooking bookingModel.Booking

	// Use DB.Transaction for automatic rollback on error
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		newBooking = bookingModel.Booking{
			UserID:       userInfo.ID,
			CustomerName: req.CustomerName(),
			CarModel:     constants.DefaultCarModel,
			PickupDate:   time.Now().Format(constants.PickupDateLayout),
			TotalBill:    totalBill,
			Status:       bookingModel.BookingStatusPending,
			Duration:     req.Duration,
			TollCharge:   tollCharge,
		}

		if err := tx.Create(&newBooking).Error; err != nil {
			logger.Error("Failed to create booking", err)
			return err
		}

		event := bookingModel.BookingStatusEvent{
			BookingID: newBooking.ID,
			Status:    bookingModel.BookingStatusPending,
			CreatedBy: username,
		}
		if err := tx.Create(&event).Error; err != nil {
			logger.Error("Failed to record status event", err)
			return err
		}

		return nil
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
			Data:    nil,
		})
	}

	// Save for the verify page
	pendingInfo := bookingTypes.PendingCustomerInfo{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: orNA(req.NationalID),
		LicenseNo:  orNA(req.LicenseNo),
	}
	if err := bc.Sessions.SavePendingInfo(c.Context(), username, pendingInfo); err != nil {
		// The booking row is already committed; the verify page falls back
		// to the sentinel record.
		logger.Error("Failed to store pending customer info", err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", newBooking.ID))
	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data: map[string]interface{}{
			"booking":  newBooking,
			"redirect": "/verify",
		},
	})
}

// ShowVerify renders the pending customer info held for the current session,
// or the sentinel record when nothing is pending.
func (bc *BookingController) ShowVerify(c *fiber.Ctx) error {
	username, ok := middleware.SessionUsername(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	pendingInfo, found, err := bc.Sessions.GetPendingInfo(c.Context(), username)
	if err != nil {
		logger.Error("Failed to load pending customer info", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}
	if !found {
		pendingInfo = bookingTypes.SentinelPendingInfo()
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending customer info",
		Data:    pendingInfo,
	})
}

// Verify applies a verification action to the booking identified in the
// request and records a status event for it.
func (bc *BookingController) Verify(c *fiber.Ctx) error {
	var req bookingTypes.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	username, ok := middleware.SessionUsername(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	status := bookingModel.StatusForAction(req.Action)

	var target bookingModel.Booking
	if err := bc.DB.First(&target, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&target).Update("status", status).Error; err != nil {
			return err
		}
		event := bookingModel.BookingStatusEvent{
			BookingID: target.ID,
			Status:    status,
			CreatedBy: username,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
			Data:    nil,
		})
	}

	if err := bc.Sessions.ClearPendingInfo(c.Context(), username); err != nil {
		logger.Warning("Failed to clear pending info: " + err.Error())
	}

	logger.Success(fmt.Sprintf("Booking %d status set to %s", target.ID, status))
	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Verification action applied",
		Data: map[string]interface{}{
			"booking_id": target.ID,
			"status":     status,
			"redirect":   "/dashboard",
		},
	})
}

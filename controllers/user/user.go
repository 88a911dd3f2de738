package user

import (
	"errors"

	"car-rental-booking/database"
	"car-rental-booking/logger"
	"car-rental-booking/middleware"
	userModel "car-rental-booking/models/user"
	"car-rental-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetUserInfo(c *fiber.Ctx) error {
	username, ok := middleware.SessionUsername(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	var account userModel.User
	if err := database.DB.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found", err)
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
				Data:    nil,
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error fetching user",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	userInfo := map[string]interface{}{
		"id":         account.ID,
		"username":   account.Username,
		"created_at": account.CreatedAt.Format("2006-01-02 15:04:05"),
		"updated_at": account.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	response := types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    userInfo,
	}
	logger.Success("User fetched successfully")
	return c.JSON(&response)
}

package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"car-rental-booking/constants"
	"car-rental-booking/logger"
	"car-rental-booking/middleware"
	userModel "car-rental-booking/models/user"
	"car-rental-booking/session"
	"car-rental-booking/types"
	authTypes "car-rental-booking/types/auth"
	"car-rental-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	sessions       *session.Store
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, sessions *session.Store, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, sessions: sessions, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := req.Validate(); validationErr != nil {
		logger.Error(validationErr.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: validationErr.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	// Exact username+password row match. The password column is plaintext;
	// see DESIGN.md.
	var account userModel.User
	err := h.db.Where("username = ? AND password = ?", req.Username, req.Password).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid username or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Database error during login", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	accessToken, err := utils.GenerateAccessToken(&account, time.Duration(constants.AccessTokenTTL)*time.Second)
	if err != nil {
		logger.Error("Failed to generate access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to establish session",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, constants.AccessCookieName, accessToken, constants.AccessTokenTTL)

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully. username: " + account.Username + " at " + currentTime)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   accessToken,
		Data: map[string]interface{}{
			"username": account.Username,
			"redirect": "/dashboard",
		},
	})
}

func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req authTypes.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := req.Validate(); validationErr != nil {
		logger.Error(validationErr.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: validationErr.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	newUser := userModel.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := h.createUser(&newUser); err != nil {
		if errors.Is(err, userModel.ErrDuplicateUsername) {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "Username already exists",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Signup is temporarily unavailable",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User created successfully. username: " + newUser.Username)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Signup successful",
		Status:  fiber.StatusCreated,
		Data: map[string]interface{}{
			"username": newUser.Username,
			"redirect": "/login",
		},
	})
}

// createUser classifies the insert failure: a uniqueness violation on
// username is a user-facing condition, everything else is a storage fault.
func (h *AuthController) createUser(u *userModel.User) error {
	if err := h.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return userModel.ErrDuplicateUsername
		}
		return fmt.Errorf("%w: %v", userModel.ErrStorageUnavailable, err)
	}
	return nil
}

// Logout clears the session cookie and any pending customer info, then sends
// the client back to the login page. No bookings-table interaction.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(constants.AccessCookieName); token != "" {
		if claims, err := middleware.VerifyJWT(token); err == nil {
			if username, _ := claims["username"].(string); username != "" {
				if err := h.sessions.ClearPendingInfo(c.Context(), username); err != nil {
					logger.Warning("Failed to clear pending info on logout: " + err.Error())
				}
			}
		}
	}

	h.setSecureCookie(c, constants.AccessCookieName, "", -1) // Expire immediately

	logger.Success("Logout successful")
	return c.Redirect("/login", fiber.StatusFound)
}

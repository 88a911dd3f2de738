package utils

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"car-rental-booking/database"
	"car-rental-booking/models/user"
	"car-rental-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// GenerateAccessToken mints the HMAC session token that is set as the access
// cookie after a successful login.
func GenerateAccessToken(u *user.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("APP_SECRET")
	if secret == "" {
		return "", fmt.Errorf("APP_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"uid":      u.ID,
		"username": u.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractUsernameFromClaims pulls the session username out of parsed claims.
func ExtractUsernameFromClaims(claims jwt.MapClaims) (string, error) {
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("username not found in token")
	}
	return username, nil
}

// GetUserByUsername retrieves a user row by username from the database
func GetUserByUsername(username string) (*user.User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}

	var userModel user.User
	if err := database.DB.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &userModel, nil
}

// FormatCurrency renders a bill total as the dashboard currency string:
// rupee sign, thousands separators, no decimal places.
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return "₹ " + sign + strings.Join(groups, ",")
}

var passwordField = regexp.MustCompile(`"password"\s*:\s*"[^"]*"`)

// sanitizeRequestBody strips credentials out of bodies before they reach the
// log table.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(append([]byte(nil), c.Body()...))
	return passwordField.ReplaceAllString(body, `"password":"[REDACTED]"`)
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry that
// is safe to hand to the async logger after the request buffers are recycled.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

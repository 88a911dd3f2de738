package middleware

import (
	"fmt"
	"os"
	"strings"

	"car-rental-booking/constants"
	"car-rental-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyJWT parses and validates an HMAC session token.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("APP_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("APP_SECRET is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// RequireSession checks for a valid session token in the Authorization header
// or the access cookie. Requests without one are redirected to the login page
// before any handler can touch the store.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to the session cookie set at login
			token = c.Cookies(constants.AccessCookieName)
			if token == "" {
				return c.Redirect("/login", fiber.StatusFound)
			}
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if username, _ := claims["username"].(string); username == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Attach claims to context
		c.Locals("user", claims)

		return c.Next()
	}
}

// SessionUsername returns the authenticated username attached by
// RequireSession.
func SessionUsername(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "", false
	}
	username, ok := claims["username"].(string)
	return username, ok && username != ""
}

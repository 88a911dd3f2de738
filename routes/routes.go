package routes

import (
	"car-rental-booking/controllers/auth"
	"car-rental-booking/controllers/booking"
	"car-rental-booking/controllers/dashboard"
	"car-rental-booking/controllers/user"
	"car-rental-booking/logger"
	"car-rental-booking/middleware"
	"car-rental-booking/session"
	"car-rental-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, sessions *session.Store) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, sessions, asyncLogger)
	bookingController := booking.NewBookingController(db, sessions, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})

	app.Get("/login", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{
			Message: "POST username and password to log in",
			Status:  fiber.StatusOK,
		})
	})
	app.Post("/login", authController.Login)

	app.Get("/signup", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{
			Message: "POST username and password to create an account",
			Status:  fiber.StatusOK,
		})
	})
	app.Post("/signup", authController.Signup)

	app.Get("/logout", authController.Logout)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	protected := app.Group("", middleware.RequireSession())

	protected.Get("/booking", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{
			Message: "POST first_name, last_name, duration, toll_charge, national_id and license_no to create a booking",
			Status:  fiber.StatusOK,
		})
	})
	protected.Post("/booking", bookingController.Store)

	protected.Get("/verify", bookingController.ShowVerify)
	protected.Post("/verify", bookingController.Verify)

	protected.Get("/dashboard", dashboardController.Index)

	protected.Get("/auth/profile", user.GetUserInfo)
}

package router

import (
	"hargeisa_vibes/handler"
	"hargeisa_vibes/middleware"
	"hargeisa_vibes/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	booking := api.Group("/bookings")
	booking.Post("/", validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", handler.GetBookings)
	booking.Get("/:id", handler.GetBookingById)
	booking.Patch("/:id/status", validate.UpdateBookingStatus(), handler.UpdateBookingStatus)
	booking.Patch("/:id/payment", validate.UpdateBookingPayment(), handler.UpdateBookingPayment)
	booking.Patch("/:id", validate.EditBooking(), handler.EditBooking)
	booking.Delete("/:id", handler.DeleteBooking)

	service := api.Group("/services")
	service.Get("/", middleware.OptionalJWT(), handler.GetServices)
	service.Get("/slug/:slug", middleware.OptionalJWT(), handler.GetServiceBySlug)
	service.Get("/:serviceId", middleware.OptionalJWT(), validate.GetById("serviceId"), handler.GetServiceById)
	service.Post("/", middleware.Protected(), middleware.StaffOnly(), validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", middleware.Protected(), middleware.StaffOnly(), validate.EditService("serviceId"), handler.EditService)
	service.Delete("/", middleware.Protected(), middleware.StaffOnly(), validate.Delete(), handler.DeleteService)

	deal := api.Group("/deals")
	deal.Get("/", middleware.OptionalJWT(), handler.GetDeals)
	deal.Get("/:dealId", middleware.OptionalJWT(), validate.GetById("dealId"), handler.GetDealById)
	deal.Post("/", middleware.Protected(), middleware.StaffOnly(), validate.CreateDeal(), handler.CreateDeal)
	deal.Put("/:dealId", middleware.Protected(), middleware.StaffOnly(), validate.EditDeal("dealId"), handler.EditDeal)
	deal.Delete("/", middleware.Protected(), middleware.StaffOnly(), validate.Delete(), handler.DeleteDeal)

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	user := api.Group("/users")
	user.Post("/register", validate.RegisterUser(), handler.RegisterUser)
	user.Post("/login", handler.UserLogin)
	user.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetUsers)
	user.Get("/me", middleware.Protected(), handler.GetCurrentUser)
	user.Patch("/me", middleware.Protected(), validate.EditUser(), handler.UpdateProfile)
	user.Post("/change-password", middleware.Protected(), validate.ChangePasswordUser(), handler.ChangePasswordUser)
	user.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	user.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := api.Group("/accounts", middleware.Protected(), middleware.AdminOnly())
	account.Get("/", handler.GetAccounts)
	account.Post("/", validate.CreateAccount(), handler.CreateAccount)
	account.Put("/:accountId", validate.UpdateAccount("accountId"), handler.UpdateAccount)
	account.Post("/change-password", validate.AdminChangePassword(), handler.AdminChangePassword)

	savedDeal := api.Group("/saved-deals", middleware.Protected())
	savedDeal.Get("/", handler.GetSavedDeals)
	savedDeal.Post("/:dealId", validate.GetById("dealId"), handler.SaveDeal)
	savedDeal.Delete("/:dealId", validate.GetById("dealId"), handler.RemoveSavedDeal)

	notification := api.Group("/notifications", middleware.Protected())
	notification.Get("/", handler.GetNotifications)
	notification.Patch("/:notificationId/read", validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Delete("/:notificationId", validate.GetById("notificationId"), handler.DeleteNotification)

	paypal := api.Group("/paypal")
	paypal.Post("/create-order", validate.CreatePayPalOrder(), handler.CreatePayPalOrder)
	paypal.Post("/capture-order", validate.CapturePayPalOrder(), handler.CapturePayPalOrder)

	api.Post("/uploads/signature", middleware.Protected(), middleware.StaffOnly(), handler.GenerateUploadSignature)

	api.Get("/admin/bookings/live", middleware.Protected(), middleware.StaffOnly(), websocket.New(handler.BookingLiveFeed))
}

package router

import (
	bookinghandler "wedding-marketplace/internal/module/booking/handler"
	paymenthandler "wedding-marketplace/internal/module/payment/handler"
	"wedding-marketplace/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *bookinghandler.BookingHandler, handlerPayment *paymenthandler.PaymentHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// bookings
	v1.Post("/bookings", m.ValidateToken, m.RequireRole("couple"), handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ListBookings)
	v1.Get("/bookings/:id", m.ValidateToken, handlerBooking.GetBooking)
	v1.Patch("/bookings/:id/status", m.ValidateToken, handlerBooking.UpdateStatus)
	v1.Post("/bookings/:id/complete", m.ValidateToken, m.RequireRole("couple", "vendor", "admin"), handlerBooking.MarkCompleted)
	v1.Post("/bookings/:id/uncomplete", m.ValidateToken, m.RequireRole("admin"), handlerBooking.UnmarkCompleted)
	v1.Get("/bookings/:id/completion", m.ValidateToken, handlerBooking.CompletionStatus)

	// payments
	v1.Post("/payments", m.ValidateToken, m.RequireRole("couple"), handlerPayment.ProcessPayment)
	v1.Get("/receipts", m.ValidateToken, handlerPayment.ListReceipts)
	v1.Get("/receipts/couple/:id", m.ValidateToken, m.RequireRole("admin"), handlerPayment.ListReceiptsByCouple)
	v1.Get("/receipts/vendor/:id", m.ValidateToken, m.RequireRole("admin"), handlerPayment.ListReceiptsByVendor)
	v1.Get("/receipts/:id", m.ValidateToken, handlerPayment.GetReceipt)

	// the gateway calls back unauthenticated; the handler acknowledges
	// everything and reconciles what it can
	v1.Post("/payments/webhook", handlerPayment.Webhook)

	return app

}

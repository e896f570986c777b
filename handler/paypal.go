package handler

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/plutov/paypal/v4"
)

var (
	paypalClient *paypal.Client
	paypalOnce   sync.Once
	paypalErr    error
)

func getPayPalClient() (*paypal.Client, error) {
	paypalOnce.Do(func() {
		base := paypal.APIBaseSandBox
		if os.Getenv("PAYPAL_MODE") == "live" {
			base = paypal.APIBaseLive
		}
		paypalClient, paypalErr = paypal.NewClient(
			os.Getenv("PAYPAL_CLIENT_ID"),
			os.Getenv("PAYPAL_CLIENT_SECRET"),
			base,
		)
	})
	return paypalClient, paypalErr
}

// CreatePayPalOrder opens a PayPal order for a booking's total. The booking
// itself is untouched until the capture callback.
func CreatePayPalOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePayPalOrderInput)

	booking, err := Bookings.GetByID(c.Context(), input.BookingId)
	if err != nil {
		if errors.Is(err, helper.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	client, err := getPayPalClient()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "PayPal client unavailable", err)
	}

	order, err := client.CreateOrder(c.Context(), paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: booking.ID,
				Description: booking.ServiceTitle,
				Amount: &paypal.PurchaseUnitAmount{
					Currency: "USD",
					Value:    fmt.Sprintf("%.2f", booking.TotalAmount),
				},
			},
		}, nil, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "PayPal order creation failed", err)
	}

	return c.JSON(fiber.Map{
		"orderId": order.ID,
		"status":  order.Status,
		"links":   order.Links,
	})
}

// CapturePayPalOrder captures an approved order and, on success, marks the
// booking paid through the lifecycle manager with the capture id as
// transaction reference. Booking status is left alone on purpose.
func CapturePayPalOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CapturePayPalOrderInput)

	client, err := getPayPalClient()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "PayPal client unavailable", err)
	}

	capture, err := client.CaptureOrder(c.Context(), input.OrderId, paypal.CaptureOrderRequest{})
	if err != nil {
		_ = Bookings.UpdatePaymentStatus(c.Context(), input.BookingId, model.PaymentStatusFailed, "")
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "PayPal capture failed", err)
	}

	transactionId := capture.ID
	for _, unit := range capture.PurchaseUnits {
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			transactionId = unit.Payments.Captures[0].ID
			break
		}
	}

	if err := Bookings.UpdatePaymentStatus(c.Context(), input.BookingId, model.PaymentStatusPaid, transactionId); err != nil {
		if errors.Is(err, helper.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message":       "payment captured",
		"bookingId":     input.BookingId,
		"transactionId": transactionId,
		"status":        capture.Status,
	})
}

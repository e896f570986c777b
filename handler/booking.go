package handler

import (
	"errors"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/database"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
)

var Bookings = helper.NewBookingManager(
	database.NewBookingStore(),
	database.NewCatalogResolver(),
	utils.ReceiptMailer{},
	helper.RedisPublisher{},
)

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	booking, emailSent, err := Bookings.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, helper.ErrInvalidDate) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid travel date", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Booking created",
		"bookingId":    booking.ID,
		"serviceTitle": booking.ServiceTitle,
		"totalAmount":  booking.TotalAmount,
		"emailSent":    emailSent,
	})
}

func GetBookings(c *fiber.Ctx) error {
	var filter model.BookingFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}

	bookings, err := Bookings.List(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if bookings == nil {
		bookings = model.Bookings{}
	}

	return c.JSON(bookings)
}

func GetBookingById(c *fiber.Ctx) error {
	booking, err := Bookings.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, helper.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(booking)
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateBookingStatusInput)

	err := Bookings.UpdateStatus(c.Context(), c.Params("id"), model.BookingStatus(input.Status), input.CancellationReason)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrBookingNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		case errors.Is(err, helper.ErrInvalidStatus), errors.Is(err, helper.ErrTransitionNotAllowed):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Booking status updated"})
}

func UpdateBookingPayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateBookingPaymentInput)

	err := Bookings.UpdatePaymentStatus(c.Context(), c.Params("id"), model.PaymentStatus(input.PaymentStatus), input.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrBookingNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		case errors.Is(err, helper.ErrInvalidPaymentStatus):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Payment status updated"})
}

func EditBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditBookingInput)

	err := Bookings.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrBookingNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		case errors.Is(err, helper.ErrInvalidDate):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid travel date", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Booking updated"})
}

func DeleteBooking(c *fiber.Ctx) error {
	err := Bookings.SoftDelete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, helper.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Booking deleted"})
}

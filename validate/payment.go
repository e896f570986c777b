package validate

import (
	"hargeisa_vibes/constants"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePayPalOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePayPalOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CapturePayPalOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CapturePayPalOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

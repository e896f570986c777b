package handler

import (
	"errors"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/database"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetNotifications(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}

	var notifications model.Notifications
	if err := database.DB.Where("user_id = ?", claim.UserId).
		Order("created_at desc").Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}
	id := c.Locals("inputId").(int)

	result := database.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, claim.UserId).
		Update("read", true)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, gorm.ErrRecordNotFound)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "notification marked read"})
}

func DeleteNotification(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}
	id := c.Locals("inputId").(int)

	var notification model.Notification
	if err := database.DB.Where("id = ? AND user_id = ?", id, claim.UserId).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "notification deleted"})
}

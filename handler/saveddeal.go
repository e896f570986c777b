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

func SaveDeal(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}
	dealId := c.Locals("inputId").(int)

	var deal model.Deal
	if err := database.DB.First(&deal, dealId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DEAL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	saved := model.SavedDeal{UserId: claim.UserId, DealId: deal.ID}
	if err := database.DB.Where(saved).FirstOrCreate(&saved).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, saved)
}

func GetSavedDeals(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}

	var saved []model.SavedDeal
	if err := database.DB.Preload("Deal").Preload("Deal.Features").Preload("Deal.Terms").
		Where("user_id = ?", claim.UserId).
		Order("created_at desc").Find(&saved).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, saved)
}

func RemoveSavedDeal(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}
	dealId := c.Locals("inputId").(int)

	result := database.DB.Where("user_id = ? AND deal_id = ?", claim.UserId, dealId).Delete(&model.SavedDeal{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, gorm.ErrRecordNotFound)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "deal removed from saved list"})
}

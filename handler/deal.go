package handler

import (
	"context"
	"errors"
	"time"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/database"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetDeals(c *fiber.Ctx) error {
	var filter model.FilterDeal
	filter.SearchKey = c.Query("search")
	filter.IncludeExpired = c.QueryBool("includeExpired")
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	query := database.DB.Model(&model.Deal{}).
		Preload("Features").Preload("Terms").
		Where("is_active = ?", true)
	if !filter.IncludeExpired {
		query = query.Where("valid_until IS NULL OR valid_until > ?", time.Now())
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var deals model.Deals
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&deals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, deals)
}

func GetDealById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var deal model.Deal
	if err := database.DB.Preload("Features").Preload("Terms").First(&deal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DEAL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, deal)
}

func CreateDeal(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateDealInput)

	var newDeal model.Deal
	copier.Copy(&newDeal, &input)
	newDeal.ValidUntil = nil
	if input.ValidUntil != nil {
		if t, err := time.Parse("2006-01-02", *input.ValidUntil); err == nil {
			newDeal.ValidUntil = &t
		}
	}
	newDeal.Slug = helper.GenerateUniqueDealSlug(database.DB, input.Title)
	newDeal.IsActive = true
	newDeal.Features = nil
	newDeal.Terms = nil
	for _, text := range input.Features {
		newDeal.Features = append(newDeal.Features, model.DealFeature{Text: text})
	}
	for _, text := range input.Terms {
		newDeal.Terms = append(newDeal.Terms, model.DealTerm{Text: text})
	}

	if err := database.DB.Create(&newDeal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newDeal)
}

// EditDeal replaces the deal's features and terms inside one transaction so
// a crash mid-update cannot leave a deal with half its child rows.
func EditDeal(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditDealInput)
	id := c.Locals("inputId").(int)

	var deal model.Deal
	if err := database.DB.First(&deal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DEAL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	oldImage := deal.ImageUrl
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		oldTitle := deal.Title
		copier.CopyWithOption(&deal, &input, copier.Option{IgnoreEmpty: true})
		deal.Features = nil
		deal.Terms = nil
		if input.Title != nil && *input.Title != oldTitle {
			deal.Slug = helper.GenerateUniqueDealSlug(tx, *input.Title)
		}
		if input.ValidUntil != nil {
			t, err := time.Parse("2006-01-02", *input.ValidUntil)
			if err != nil {
				return err
			}
			deal.ValidUntil = &t
		}
		if input.IsActive != nil {
			deal.IsActive = *input.IsActive
		}

		if err := tx.Save(&deal).Error; err != nil {
			return err
		}

		if input.Features != nil {
			if err := tx.Where("deal_id = ?", deal.ID).Delete(&model.DealFeature{}).Error; err != nil {
				return err
			}
			for _, text := range *input.Features {
				if err := tx.Create(&model.DealFeature{DealId: deal.ID, Text: text}).Error; err != nil {
					return err
				}
			}
		}
		if input.Terms != nil {
			if err := tx.Where("deal_id = ?", deal.ID).Delete(&model.DealTerm{}).Error; err != nil {
				return err
			}
			for _, text := range *input.Terms {
				if err := tx.Create(&model.DealTerm{DealId: deal.ID, Text: text}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.ImageUrl != nil && oldImage != nil && *oldImage != *input.ImageUrl {
		go helper.DestroyImage(context.Background(), *oldImage)
	}

	database.DB.Preload("Features").Preload("Terms").First(&deal, deal.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, deal)
}

func DeleteDeal(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Deal{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Deals deleted"})
}

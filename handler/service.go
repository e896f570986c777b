package handler

import (
	"context"
	"errors"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/database"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetServices(c *fiber.Ctx) error {
	var filter model.FilterService
	filter.SearchKey = c.Query("search")
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	query := database.DB.Model(&model.Service{}).Where("is_active = ?", true)
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Location != nil {
		query = query.Where("location = ?", *filter.Location)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var services model.Services
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       services,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetServiceById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var service model.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func GetServiceBySlug(c *fiber.Ctx) error {
	var service model.Service
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateServiceInput)

	var newService model.Service
	copier.Copy(&newService, &input)
	newService.Slug = helper.GenerateUniqueServiceSlug(database.DB, input.Title)
	newService.IsActive = true

	if err := database.DB.Create(&newService).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newService)
}

func EditService(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditServiceInput)
	id := c.Locals("inputId").(int)

	var service model.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	oldTitle := service.Title
	oldImage := service.ImageUrl
	copier.CopyWithOption(&service, &input, copier.Option{IgnoreEmpty: true})
	if input.Title != nil && *input.Title != oldTitle {
		service.Slug = helper.GenerateUniqueServiceSlug(database.DB, *input.Title)
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.ImageUrl != nil && oldImage != nil && *oldImage != *input.ImageUrl {
		go helper.DestroyImage(context.Background(), *oldImage)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func DeleteService(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Service{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Services deleted"})
}

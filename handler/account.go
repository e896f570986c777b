package handler

import (
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

func GetAccounts(c *fiber.Ctx) error {
	var filter model.FilterAccount
	filter.SearchKey = c.Query("search")
	if role := c.Query("role"); role != "" {
		filter.Role = &role
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	query := database.DB.Model(&model.Account{})
	if filter.SearchKey != "" {
		query = query.Where("username LIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var accounts model.Accounts
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateAccountInput)

	var count int64
	if err := database.DB.Model(&model.Account{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username is already taken", nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &input)
	newAccount.Password = hashed
	newAccount.Active = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func UpdateAccount(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateAccountInput)
	id := c.Locals("inputId").(int)

	var account model.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&account, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		account.Active = *input.Active
	}

	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func AdminChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AdminChangePassword)

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&account).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// force a fresh login
	helper.DeleteRefreshSession(c.Context(), "admin", account.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

package handler

import (
	"errors"
	"time"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/database"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterUser(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterUserInput)

	var count int64
	if err := database.DB.Model(&model.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_USED, nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newUser model.User
	copier.Copy(&newUser, &input)
	newUser.Password = hashed
	newUser.IsActive = true

	if err := database.DB.Create(&newUser).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newUser)
}

func UserLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	var user model.User
	if err := database.DB.Where("email = ?", loginInput.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, errors.New("email not registered"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(loginInput.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("user disabled"))
	}

	claim := model.TokenClaim{UserId: user.ID, Username: user.Email}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.SaveRefreshSession(c.Context(), "user", user.ID, refreshToken, refreshSessionTTL); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user": user,
		"tokens": model.TokenData{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	})
}

func GetCurrentUser(c *fiber.Ctx) error {
	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// GetUsers is the admin listing; the public never sees other users.
func GetUsers(c *fiber.Ctx) error {
	var filter model.FilterUser
	filter.SearchKey = c.Query("search")
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	query := database.DB.Model(&model.User{})
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var users model.Users
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditUserInput)

	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePasswordUser(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UserChangePassword)

	claim, ok := helper.ClaimFromToken(c)
	if !ok || claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "login required", nil)
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, nil)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

// ForgotPassword always answers 200 so the endpoint cannot be used to probe
// which emails are registered.
func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ForgotPasswordRequest)

	var user model.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "if the email exists, a reset link was sent"})
	}

	token := uuid.NewString()
	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := database.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	go func(email, token string) {
		if err := utils.SendPasswordResetEmail(email, token); err != nil {
			utils.GetLogger().Warn("password reset email failed", zap.Error(err))
		}
	}(user.Email, token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "if the email exists, a reset link was sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ResetPasswordRequest)

	var resetToken model.PasswordResetToken
	if err := database.DB.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid or expired token", err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&model.User{}).Where("id = ?", resetToken.UserId).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password reset"})
}

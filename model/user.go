package model

import "time"

type User struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `json:"phone"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`

	AvatarUrl *string `json:"avatarUrl"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterUserInput struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `json:"phone"`
	Password string `validate:"required,min=8" json:"password"`
}

type EditUserInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarUrl *string `json:"avatarUrl"`
}

type UserChangePassword struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=8" json:"newPassword"`
	RepeatPassword  string `validate:"required" json:"repeatPassword"`
}

type FilterUser struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

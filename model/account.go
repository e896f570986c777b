package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"size:20;not null" json:"role"` // ADMIN, MANAGER
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	Role     string `validate:"required,oneof=ADMIN MANAGER" json:"role"`
}

type UpdateAccountInput struct {
	Username *string `json:"username,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `validate:"omitempty,oneof=ADMIN MANAGER" json:"role,omitempty"`
}

type AdminChangePassword struct {
	AccountId      uint   `validate:"required" json:"accountId"`
	NewPassword    string `validate:"required,min=6" json:"newPassword"`
	RepeatPassword string `validate:"required" json:"repeatPassword"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}

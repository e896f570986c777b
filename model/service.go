package model

type Service struct {
	DTO
	Title       string  `gorm:"not null" validate:"required" json:"title"`
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:50;index" json:"category"`
	Location    string  `gorm:"size:100" json:"location"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Duration    string  `gorm:"size:50" json:"duration"`
	ImageUrl    *string `json:"imageUrl"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
}

type Services []Service

type CreateServiceInput struct {
	Title       string  `validate:"required,min=3,max=150" json:"title"`
	Description string  `json:"description"`
	Category    string  `validate:"required" json:"category"`
	Location    string  `json:"location"`
	Price       float64 `validate:"required,gt=0" json:"price"`
	Duration    string  `json:"duration"`
	ImageUrl    *string `json:"imageUrl"`
}

type EditServiceInput struct {
	Title       *string  `validate:"omitempty,min=3,max=150" json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Location    *string  `json:"location"`
	Price       *float64 `validate:"omitempty,gt=0" json:"price"`
	Duration    *string  `json:"duration"`
	ImageUrl    *string  `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

type FilterService struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Category  *string `json:"category"`
	Location  *string `json:"location"`
	IsActive  *bool   `json:"isActive"`
}

package model

import "time"

type Deal struct {
	DTO
	Title         string       `gorm:"not null" json:"title"`
	Slug          string       `gorm:"uniqueIndex;size:120" json:"slug"`
	Description   string       `gorm:"type:text" json:"description"`
	Price         float64      `gorm:"not null;default:0" json:"price"`
	OriginalPrice float64      `json:"originalPrice"`
	ValidUntil    *time.Time   `json:"validUntil"`
	ImageUrl      *string      `json:"imageUrl"`
	IsActive      bool         `gorm:"default:true" json:"isActive"`
	Features      []DealFeature `gorm:"foreignKey:DealId;constraint:OnDelete:CASCADE" json:"features"`
	Terms         []DealTerm    `gorm:"foreignKey:DealId;constraint:OnDelete:CASCADE" json:"terms"`
}

type Deals []Deal

type DealFeature struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DealId uint   `gorm:"not null;index" json:"dealId"`
	Text   string `gorm:"not null" json:"text"`
}

type DealTerm struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DealId uint   `gorm:"not null;index" json:"dealId"`
	Text   string `gorm:"not null" json:"text"`
}

type CreateDealInput struct {
	Title         string   `validate:"required,min=3,max=150" json:"title"`
	Description   string   `json:"description"`
	Price         float64  `validate:"required,gt=0" json:"price"`
	OriginalPrice float64  `validate:"omitempty,gt=0" json:"originalPrice"`
	ValidUntil    *string  `json:"validUntil"`
	ImageUrl      *string  `json:"imageUrl"`
	Features      []string `json:"features"`
	Terms         []string `json:"terms"`
}

type EditDealInput struct {
	Title         *string  `validate:"omitempty,min=3,max=150" json:"title"`
	Description   *string  `json:"description"`
	Price         *float64 `validate:"omitempty,gt=0" json:"price"`
	OriginalPrice *float64 `validate:"omitempty,gt=0" json:"originalPrice"`
	ValidUntil    *string  `json:"validUntil"`
	ImageUrl      *string  `json:"imageUrl"`
	IsActive      *bool    `json:"isActive"`
	Features      *[]string `json:"features"`
	Terms         *[]string `json:"terms"`
}

type FilterDeal struct {
	Pagination
	SearchKey      string `json:"searchKey"`
	IncludeExpired bool   `json:"includeExpired"`
	IsActive       *bool  `json:"isActive"`
}

type SavedDeal struct {
	DTO
	UserId uint `gorm:"not null;uniqueIndex:idx_saved_user_deal" json:"userId"`
	DealId uint `gorm:"not null;uniqueIndex:idx_saved_user_deal" json:"dealId"`
	Deal   Deal `gorm:"foreignKey:DealId" json:"deal"`
}

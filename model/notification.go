package model

type Notification struct {
	DTO
	UserId uint   `gorm:"not null;index" json:"userId"`
	Title  string `gorm:"not null" json:"title"`
	Body   string `gorm:"type:text" json:"body"`
	Read   bool   `gorm:"default:false" json:"read"`
}

type Notifications []Notification

package database

import (
	"fmt"
	"strconv"

	"hargeisa_vibes/config"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "3306")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Config("DB_USER"), config.Config("DB_PASSWORD"),
		config.Config("DB_HOST"), port, config.Config("DB_NAME"))
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	utils.GetLogger().Info("connection opened to database")

	DB.AutoMigrate(
		&model.Account{},
		&model.User{},
		&model.Service{},
		&model.Deal{},
		&model.DealFeature{},
		&model.DealTerm{},
		&model.Booking{},
		&model.SavedDeal{},
		&model.Notification{},
		&model.PasswordResetToken{},
	)
	utils.GetLogger().Info("database migrated")

	SeedData(DB)
}

package database

import (
	"log"
	"time"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("hargeisa@admin"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	services := []model.Service{
		{Title: "Laas Geel Rock Art Tour", Category: "tours", Location: "Laas Geel", Price: 45, Duration: "Half day", Description: "Guided trip to the Laas Geel cave paintings with hotel pickup."},
		{Title: "Hargeisa City Walking Tour", Category: "tours", Location: "Hargeisa", Price: 25, Duration: "3 hours", Description: "Markets, the war memorial and the camel market with a local guide."},
		{Title: "Traditional Henna Session", Category: "beauty", Location: "Hargeisa", Price: 15, Duration: "1 hour", Description: "Bridal and casual henna by experienced artists."},
		{Title: "Berbera Beach Day Trip", Category: "tours", Location: "Berbera", Price: 80, Duration: "Full day", Description: "Coastal drive, beach time and fresh seafood lunch."},
	}
	for _, service := range services {
		service.Slug = slug.Make(service.Title)
		service.IsActive = true
		if err := db.Where(model.Service{Slug: service.Slug}).FirstOrCreate(&service).Error; err != nil {
			log.Println("failed to seed service:", service.Title, "error:", err)
		}
	}

	validUntil := time.Now().AddDate(0, 3, 0)
	deals := []model.Deal{
		{
			Title:         "Weekend Getaway Package",
			Description:   "Two nights in Berbera with transport and breakfast included.",
			Price:         199,
			OriginalPrice: 260,
			ValidUntil:    &validUntil,
			Features: []model.DealFeature{
				{Text: "Round-trip transport from Hargeisa"},
				{Text: "2 nights accommodation"},
				{Text: "Daily breakfast"},
			},
			Terms: []model.DealTerm{
				{Text: "Valid for two adults"},
				{Text: "Subject to availability"},
			},
		},
	}
	for _, deal := range deals {
		deal.Slug = slug.Make(deal.Title)
		deal.IsActive = true
		if err := db.Where(model.Deal{Slug: deal.Slug}).FirstOrCreate(&deal).Error; err != nil {
			log.Println("failed to seed deal:", deal.Title, "error:", err)
		}
	}

	utils.GetLogger().Info("seed data ensured")
}

package database

import (
	"cinema_api/helper"
	"cinema_api/model"
	"log"

	"gorm.io/gorm"
)

var defaultAuditoriums = []model.CreateAuditoriumInput{
	{Capacity: 40, SeatsPerRow: 10},
	{Capacity: 60, SeatsPerRow: 12},
	{Capacity: 100, SeatsPerRow: 20},
}

// SeedData creates the default auditoriums on an empty database.
func SeedData(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Auditorium{}).Count(&count).Error; err != nil {
		log.Println("failed to count auditoriums:", err)
		return
	}
	if count > 0 {
		return
	}
	for _, in := range defaultAuditoriums {
		a, err := helper.CreateAuditorium(db, in)
		if err != nil {
			log.Println("failed to seed auditorium:", err)
			continue
		}
		log.Printf("seeded screen %d with %d seats", a.ID, a.Capacity)
	}
}

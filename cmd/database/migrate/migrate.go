package migration

import (
	"ecobytes-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Organization{}, &entities.OrganizationSlot{}); err != nil {
		log.Fatalf("Error migrating organization database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Farm{}, &entities.FarmSlot{}); err != nil {
		log.Fatalf("Error migrating farm database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationRequest{}, &entities.DonationRequestItem{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CompostingRequest{}, &entities.CompostingRequestItem{}); err != nil {
		log.Fatalf("Error migrating composting database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

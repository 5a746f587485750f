// Seeds the vehicles collection with the sample fleet.
package main

import (
	"context"
	"log"
	"time"

	"github.com/crcab-dev/car_rental_backend/config"
	"github.com/crcab-dev/car_rental_backend/models"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	client, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	config.InitCollections(client)

	now := time.Now()
	sampleVehicles := []interface{}{
		models.Vehicle{
			Name:         "Suzuki Alto",
			Brand:        "Suzuki",
			Seats:        4,
			HasAC:        false,
			Price:        "Rs. 3,500/day",
			Images:       []string{"/suzuki-alto.png"},
			MainImage:    "/suzuki-alto.png",
			Available:    true,
			Type:         models.TypeEconomy,
			FuelType:     models.FuelPetrol,
			Transmission: models.TransmissionManual,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Vehicle{
			Name:         "Toyota Prius",
			Brand:        "Toyota",
			Seats:        5,
			HasAC:        true,
			Price:        "Rs. 6,000/day",
			Images:       []string{"/toyota-prius.png"},
			MainImage:    "/toyota-prius.png",
			Available:    true,
			Type:         models.TypeComfort,
			FuelType:     models.FuelHybrid,
			Transmission: models.TransmissionAutomatic,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Vehicle{
			Name:         "Honda Vezel",
			Brand:        "Honda",
			Seats:        5,
			HasAC:        true,
			Price:        "Rs. 8,000/day",
			Images:       []string{"/honda-vezel.png"},
			MainImage:    "/honda-vezel.png",
			Available:    false,
			Type:         models.TypeLuxury,
			FuelType:     models.FuelHybrid,
			Transmission: models.TransmissionAutomatic,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.VehicleCollection.InsertMany(ctx, sampleVehicles)
	if err != nil {
		log.Fatalf("Error seeding vehicles: %v", err)
	}
	log.Printf("Database initialized successfully: inserted %d vehicles", len(res.InsertedIDs))
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeEconomy = "economy"
	TypeComfort = "comfort"
	TypeLuxury  = "luxury"

	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"

	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"
)

// Vehicle is one rentable car as stored in the vehicles collection.
// Older documents carry a single Image field; newer ones carry Images plus a
// designated MainImage. Normalize folds both shapes into the current one.
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Brand        string             `bson:"brand" json:"brand"`
	Seats        int                `bson:"seats" json:"seats"`
	HasAC        bool               `bson:"hasAC" json:"hasAC"`
	Price        string             `bson:"price" json:"price"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Images       []string           `bson:"images,omitempty" json:"images"`
	MainImage    string             `bson:"mainImage,omitempty" json:"mainImage"`
	Available    bool               `bson:"available" json:"available"`
	Type         string             `bson:"type" json:"type"`
	FuelType     string             `bson:"fuelType" json:"fuelType"`
	Transmission string             `bson:"transmission" json:"transmission"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func validType(t string) bool {
	return t == TypeEconomy || t == TypeComfort || t == TypeLuxury
}

func validFuelType(f string) bool {
	return f == FuelPetrol || f == FuelDiesel || f == FuelHybrid || f == FuelElectric
}

func validTransmission(tr string) bool {
	return tr == TransmissionManual || tr == TransmissionAutomatic
}

// Normalize canonicalizes a vehicle loaded from storage: the legacy single
// image becomes the image list, the main image is guaranteed to be a member of
// a non-empty list, and absent categorical fields fall back to the neutral
// defaults instead of dropping the record from filtered views.
func (v *Vehicle) Normalize() {
	if len(v.Images) == 0 && v.Image != "" {
		v.Images = []string{v.Image}
	}
	if v.MainImage == "" {
		if len(v.Images) > 0 {
			v.MainImage = v.Images[0]
		} else if v.Image != "" {
			v.MainImage = v.Image
		}
	}
	if v.MainImage != "" && len(v.Images) > 0 && !containsString(v.Images, v.MainImage) {
		v.Images = append([]string{v.MainImage}, v.Images...)
	}

	if !validType(v.Type) {
		v.Type = TypeEconomy
	}
	if !validFuelType(v.FuelType) {
		v.FuelType = FuelPetrol
	}
	if !validTransmission(v.Transmission) {
		v.Transmission = TransmissionManual
	}
}

// ValidateForCreate reports the first problem with a vehicle submitted to the
// create endpoint, or "" when it is acceptable.
func (v *Vehicle) ValidateForCreate() string {
	if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Price) == "" {
		return "Missing required fields: name, brand and price"
	}
	if !strings.ContainsAny(v.Price, "0123456789") {
		return "Price must contain a numeric amount"
	}
	if v.Seats < 0 {
		return "Seats must be a positive number"
	}
	if v.Type != "" && !validType(v.Type) {
		return "Invalid vehicle type"
	}
	if v.FuelType != "" && !validFuelType(v.FuelType) {
		return "Invalid fuel type"
	}
	if v.Transmission != "" && !validTransmission(v.Transmission) {
		return "Invalid transmission"
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

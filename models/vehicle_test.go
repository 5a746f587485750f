package models

import "testing"

func TestNormalizeLegacyImage(t *testing.T) {
	v := Vehicle{Image: "/alto.png"}
	v.Normalize()

	if len(v.Images) != 1 || v.Images[0] != "/alto.png" {
		t.Fatalf("legacy image should become the image list, got %v", v.Images)
	}
	if v.MainImage != "/alto.png" {
		t.Fatalf("legacy image should become the main image, got %q", v.MainImage)
	}
}

func TestNormalizeMainImageDefaultsToFirst(t *testing.T) {
	v := Vehicle{Images: []string{"/a.png", "/b.png"}}
	v.Normalize()
	if v.MainImage != "/a.png" {
		t.Fatalf("main image should default to the first image, got %q", v.MainImage)
	}
}

func TestNormalizeMainImageJoinsList(t *testing.T) {
	v := Vehicle{Images: []string{"/a.png"}, MainImage: "/main.png"}
	v.Normalize()
	if v.Images[0] != "/main.png" {
		t.Fatalf("main image should be a member of the list, got %v", v.Images)
	}
	if len(v.Images) != 2 {
		t.Fatalf("existing images should be kept, got %v", v.Images)
	}
}

func TestNormalizeDefaultsCategories(t *testing.T) {
	v := Vehicle{Type: "", FuelType: "rocket", Transmission: ""}
	v.Normalize()
	if v.Type != TypeEconomy {
		t.Errorf("type default: got %q", v.Type)
	}
	if v.FuelType != FuelPetrol {
		t.Errorf("fuelType default: got %q", v.FuelType)
	}
	if v.Transmission != TransmissionManual {
		t.Errorf("transmission default: got %q", v.Transmission)
	}
}

func TestNormalizeKeepsValidFields(t *testing.T) {
	v := Vehicle{
		Images: []string{"/a.png"}, MainImage: "/a.png",
		Type: TypeLuxury, FuelType: FuelElectric, Transmission: TransmissionAutomatic,
	}
	v.Normalize()
	if v.Type != TypeLuxury || v.FuelType != FuelElectric || v.Transmission != TransmissionAutomatic {
		t.Fatalf("valid fields should be untouched: %+v", v)
	}
	if len(v.Images) != 1 {
		t.Fatalf("consistent media should be untouched, got %v", v.Images)
	}
}

func TestValidateForCreate(t *testing.T) {
	valid := Vehicle{Name: "Suzuki Alto", Brand: "Suzuki", Price: "Rs. 3,500/day"}
	if msg := valid.ValidateForCreate(); msg != "" {
		t.Fatalf("valid vehicle rejected: %s", msg)
	}

	cases := []struct {
		name    string
		vehicle Vehicle
	}{
		{"missing name", Vehicle{Brand: "Suzuki", Price: "Rs. 3,500/day"}},
		{"missing brand", Vehicle{Name: "Alto", Price: "Rs. 3,500/day"}},
		{"missing price", Vehicle{Name: "Alto", Brand: "Suzuki"}},
		{"blank price", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "   "}},
		{"digitless price", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "call us"}},
		{"bad type", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "3500", Type: "prestige"}},
		{"bad fuel", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "3500", FuelType: "coal"}},
		{"bad transmission", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "3500", Transmission: "cvt-ish"}},
		{"negative seats", Vehicle{Name: "Alto", Brand: "Suzuki", Price: "3500", Seats: -1}},
	}
	for _, c := range cases {
		if msg := c.vehicle.ValidateForCreate(); msg == "" {
			t.Errorf("%s: expected rejection", c.name)
		}
	}
}

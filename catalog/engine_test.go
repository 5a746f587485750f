package catalog

import (
	"testing"

	"github.com/crcab-dev/car_rental_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("ObjectIDFromHex(%s): %v", hex, err)
	}
	return id
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3,500/day", 3500},
		{"1200", 1200},
		// the dot in the currency abbreviation survives the strip, as in
		// the original parser
		{"Rs. 3,500/day", 0.35},
		{"", 0},
		{"per day", 0},
		{"contact us", 0},
		{"1.5.2", 0},
	}
	for _, c := range cases {
		if got := ParsePrice(c.in); got != c.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func fleet(t *testing.T) []models.Vehicle {
	t.Helper()
	return []models.Vehicle{
		{
			ID: oid(t, "650000000000000000000001"), Name: "Suzuki Alto", Brand: "Suzuki",
			Price: "Rs. 3,500/day", Type: models.TypeEconomy, FuelType: models.FuelPetrol,
			Transmission: models.TransmissionManual, HasAC: false,
		},
		{
			ID: oid(t, "650000000000000000000002"), Name: "Toyota Prius", Brand: "Toyota",
			Price: "Rs. 6,000/day", Type: models.TypeComfort, FuelType: models.FuelHybrid,
			Transmission: models.TransmissionAutomatic, HasAC: true,
		},
		{
			ID: oid(t, "650000000000000000000003"), Name: "Honda Vezel", Brand: "Honda",
			Price: "Rs. 8,000/day", Type: models.TypeLuxury, FuelType: models.FuelHybrid,
			Transmission: models.TransmissionAutomatic, HasAC: true,
		},
		{
			ID: oid(t, "650000000000000000000004"), Name: "Suzuki WagonR", Brand: "Suzuki",
			Price: "Rs. 4,000/day", Type: models.TypeEconomy, FuelType: models.FuelPetrol,
			Transmission: models.TransmissionManual, HasAC: false,
		},
		{
			ID: oid(t, "650000000000000000000005"), Name: "Toyota KDH", Brand: "Toyota",
			Price: "Rs. 12,000/day", Type: models.TypeComfort, FuelType: models.FuelDiesel,
			Transmission: models.TransmissionManual, HasAC: false,
		},
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	vehicles := fleet(t)
	q := Query{Search: "toyota", FuelType: models.FuelHybrid}

	got := Filter(vehicles, q)
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Name != "Toyota Prius" {
		t.Errorf("expected Toyota Prius, got %s", got[0].Name)
	}
	for _, v := range got {
		if !Matches(v, q) {
			t.Errorf("filtered result %s does not satisfy the query", v.Name)
		}
	}
}

func TestEmptySearchMatchesEverything(t *testing.T) {
	vehicles := fleet(t)
	got := Filter(vehicles, Query{})
	if len(got) != len(vehicles) {
		t.Fatalf("empty query should return all %d vehicles, got %d", len(vehicles), len(got))
	}
}

func TestSearchMatchesNameBrandAndType(t *testing.T) {
	vehicles := fleet(t)

	byName := Filter(vehicles, Query{Search: "alto"})
	if len(byName) != 1 || byName[0].Name != "Suzuki Alto" {
		t.Fatalf("search 'alto': expected only Suzuki Alto, got %v", names(byName))
	}

	byBrand := Filter(vehicles, Query{Search: "HONDA"})
	if len(byBrand) != 1 || byBrand[0].Name != "Honda Vezel" {
		t.Fatalf("search 'HONDA': expected only Honda Vezel, got %v", names(byBrand))
	}

	byType := Filter(vehicles, Query{Search: "luxury"})
	if len(byType) != 1 || byType[0].Name != "Honda Vezel" {
		t.Fatalf("search 'luxury': expected only Honda Vezel, got %v", names(byType))
	}
}

func TestACFilterIsTriState(t *testing.T) {
	vehicles := fleet(t)

	withAC := true
	got := Filter(vehicles, Query{HasAC: &withAC})
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 vehicles with AC, got %d", len(got))
	}

	withoutAC := false
	got = Filter(vehicles, Query{HasAC: &withoutAC})
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 vehicles without AC, got %d", len(got))
	}

	got = Filter(vehicles, Query{})
	if len(got) != 5 {
		t.Fatalf("unset AC filter should match all 5 vehicles, got %d", len(got))
	}
}

func TestPriceSortOrdering(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: oid(t, "650000000000000000000001"), Name: "A", Price: "Rs. 3,500/day"},
		{ID: oid(t, "650000000000000000000002"), Name: "B", Price: "Rs. 1,200/day"},
		{ID: oid(t, "650000000000000000000003"), Name: "C", Price: ""},
	}

	Sort(vehicles, SortPriceAsc)
	want := []string{"C", "B", "A"}
	for i, n := range want {
		if vehicles[i].Name != n {
			t.Fatalf("priceAsc position %d: got %s, want %s (order %v)", i, vehicles[i].Name, n, names(vehicles))
		}
	}

	Sort(vehicles, SortPriceDesc)
	for i := 0; i < len(vehicles)-1; i++ {
		if ParsePrice(vehicles[i].Price) < ParsePrice(vehicles[i+1].Price) {
			t.Fatalf("priceDesc not monotonic at %d: %v", i, names(vehicles))
		}
	}
}

func TestPriceSortIsStable(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: oid(t, "650000000000000000000001"), Name: "First", Price: "Rs. 5,000/day"},
		{ID: oid(t, "650000000000000000000002"), Name: "Second", Price: "Rs. 5,000/day"},
	}
	Sort(vehicles, SortPriceAsc)
	if vehicles[0].Name != "First" || vehicles[1].Name != "Second" {
		t.Fatalf("equal prices should keep input order, got %v", names(vehicles))
	}
}

func TestNewestSortsByDescendingID(t *testing.T) {
	vehicles := fleet(t)
	Sort(vehicles, SortNewest)
	for i := 0; i < len(vehicles)-1; i++ {
		if vehicles[i].ID.Hex() < vehicles[i+1].ID.Hex() {
			t.Fatalf("newest sort not descending by id at %d", i)
		}
	}
}

func TestApplyFiltersThenSorts(t *testing.T) {
	vehicles := fleet(t)
	got := Apply(vehicles, Query{Type: models.TypeComfort, SortBy: SortPriceDesc})
	if len(got) != 2 {
		t.Fatalf("expected 2 comfort vehicles, got %d", len(got))
	}
	if got[0].Name != "Toyota KDH" || got[1].Name != "Toyota Prius" {
		t.Fatalf("unexpected order: %v", names(got))
	}
	if len(vehicles) != 5 {
		t.Fatalf("input slice should be untouched by Apply")
	}
}

func names(vehicles []models.Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.Name
	}
	return out
}

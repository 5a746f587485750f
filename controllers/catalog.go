package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/crcab-dev/car_rental_backend/catalog"

	"go.mongodb.org/mongo-driver/bson"
)

// BrowseCatalog serves the fleet browser: it loads the whole catalog and runs
// the in-memory filter/sort/search engine over it, so the ordering and
// matching rules live in one place regardless of which client asks.
func BrowseCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		q := catalog.Query{
			Search:       params.Get("search"),
			Type:         params.Get("type"),
			FuelType:     params.Get("fuelType"),
			Transmission: params.Get("transmission"),
			SortBy:       params.Get("sortBy"),
		}
		if hasAC := params.Get("hasAC"); hasAC != "" {
			if b, err := strconv.ParseBool(hasAC); err == nil {
				q.HasAC = &b
			} else {
				log.Printf("Invalid hasAC value %q, treating as any", hasAC)
			}
		}

		vehicles, err := fetchVehicles(r.Context(), bson.M{})
		if err != nil {
			log.Printf("Error loading catalog: %v", err)
			http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
			return
		}

		result := catalog.Apply(vehicles, q)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

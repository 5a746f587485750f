// Package catalog holds the in-memory filter/sort/search engine the fleet
// browser runs over an already-fetched vehicle list.
package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/crcab-dev/car_rental_backend/models"
)

const (
	SortNewest    = "newest"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

// Query is one catalog request: a free-text search term, the categorical
// filters (empty string means any), the tri-state AC filter (nil means any),
// and a sort key.
type Query struct {
	Search       string
	Type         string
	FuelType     string
	Transmission string
	HasAC        *bool
	SortBy       string
}

// ParsePrice pulls the numeric amount out of a display price such as
// "Rs. 3,500/day". Every character that is not a digit or decimal point is
// stripped before parsing; anything that still fails to parse, or parses to a
// non-finite value, counts as zero so priceless vehicles sort lowest.
func ParsePrice(price string) float64 {
	var sb strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Matches reports whether a vehicle satisfies every clause of the query. The
// search term matches case-insensitively as a substring of the name, brand or
// vehicle type; an empty term matches everything.
func Matches(v models.Vehicle, q Query) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(v.Name), term) &&
			!strings.Contains(strings.ToLower(v.Brand), term) &&
			!strings.Contains(strings.ToLower(v.Type), term) {
			return false
		}
	}
	if q.Type != "" && v.Type != q.Type {
		return false
	}
	if q.FuelType != "" && v.FuelType != q.FuelType {
		return false
	}
	if q.Transmission != "" && v.Transmission != q.Transmission {
		return false
	}
	if q.HasAC != nil && v.HasAC != *q.HasAC {
		return false
	}
	return true
}

// Filter returns the vehicles matching the query, in their input order.
func Filter(vehicles []models.Vehicle, q Query) []models.Vehicle {
	filtered := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if Matches(v, q) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Sort orders vehicles in place. Price sorts compare the parsed amounts;
// "newest" compares hex ids descending, which tracks creation order for
// ObjectIDs (the leading bytes are a timestamp) but is an approximation, not a
// timestamp sort. The sort is stable so ties keep their input order.
func Sort(vehicles []models.Vehicle, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return ParsePrice(vehicles[i].Price) < ParsePrice(vehicles[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return ParsePrice(vehicles[i].Price) > ParsePrice(vehicles[j].Price)
		})
	default:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].ID.Hex() > vehicles[j].ID.Hex()
		})
	}
}

// Apply runs the full pipeline: filter, then sort.
func Apply(vehicles []models.Vehicle, q Query) []models.Vehicle {
	result := Filter(vehicles, q)
	Sort(result, q.SortBy)
	return result
}

package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/crcab-dev/car_rental_backend/config"
	"github.com/crcab-dev/car_rental_backend/models"
	"github.com/gorilla/mux"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

// BuildVehicleFilter turns the list endpoint's query parameters into a Mongo
// filter. All provided clauses are ANDed; the search term alone is an OR over
// name and brand, matched as a case-insensitive substring.
func BuildVehicleFilter(query url.Values) bson.M {
	filter := bson.M{}

	if searchTerm := query.Get("search"); searchTerm != "" {
		// Quoted so the term is a literal substring, not a pattern.
		pattern := regexp.QuoteMeta(searchTerm)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}}},
			bson.M{"brand": bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}}},
		}
	}
	if vehicleType := query.Get("type"); vehicleType != "" {
		filter["type"] = vehicleType
	}
	if fuelType := query.Get("fuelType"); fuelType != "" {
		filter["fuelType"] = fuelType
	}
	if transmission := query.Get("transmission"); transmission != "" {
		filter["transmission"] = transmission
	}
	if hasAC := query.Get("hasAC"); hasAC != "" {
		filter["hasAC"] = hasAC == "true"
	}
	if available := query.Get("available"); available != "" {
		filter["available"] = available == "true"
	}

	return filter
}

func fetchVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	cursor, err := config.VehicleCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	for i := range vehicles {
		vehicles[i].Normalize()
	}
	return vehicles, nil
}

func GetAllVehicles(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		cacheKey := generateCacheKey(query)

		cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
		if err == nil {
			log.Printf("Cache hit for key: %s", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cachedData))
			return
		}
		if err != redis.Nil {
			log.Printf("Redis GET error for key %s: %v", cacheKey, err)
		}

		vehicles, err := fetchVehicles(r.Context(), BuildVehicleFilter(query))
		if err != nil {
			log.Printf("Error fetching vehicles: %v", err)
			http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
			return
		}

		resultBytes, err := json.Marshal(vehicles)
		if err != nil {
			log.Printf("Failed to serialize vehicles: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, resultBytes, 10*time.Minute).Err(); err != nil {
			log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func GetVehicleByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(vehicleID)
		if err != nil {
			log.Printf("Invalid vehicle ID %s: %v", vehicleID, err)
			http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
			return
		}

		var vehicle models.Vehicle
		err = config.VehicleCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&vehicle)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error fetching vehicle %s: %v", vehicleID, err)
			http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
			return
		}
		vehicle.Normalize()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vehicle)
	}
}

func CreateVehicle(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vehicle models.Vehicle
		if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if msg := vehicle.ValidateForCreate(); msg != "" {
			log.Printf("Vehicle rejected: %s", msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		vehicle.ID = primitive.NewObjectID()
		vehicle.Normalize()
		now := time.Now()
		vehicle.CreatedAt = now
		vehicle.UpdatedAt = now

		if _, err := config.VehicleCollection.InsertOne(r.Context(), vehicle); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
			return
		}

		go deleteVehicleCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(vehicle)
	}
}

func UpdateVehicle(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(vehicleID)
		if err != nil {
			log.Printf("Invalid vehicle ID %s: %v", vehicleID, err)
			http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
			return
		}

		var updateData map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
			log.Printf("Invalid update data: %v", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}

		delete(updateData, "_id")
		delete(updateData, "createdAt")
		updateData["updatedAt"] = time.Now()

		res, err := config.VehicleCollection.UpdateOne(
			r.Context(),
			bson.M{"_id": objID},
			bson.M{"$set": updateData},
		)
		if err != nil {
			log.Printf("Update failed for vehicle %s: %v", vehicleID, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		if res.MatchedCount == 0 {
			log.Printf("No vehicle found with ID %s", vehicleID)
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}

		go deleteVehicleCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":      "Vehicle updated successfully",
			"matchedCount": res.MatchedCount,
		})
	}
}

func DeleteVehicle(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(vehicleID)
		if err != nil {
			log.Printf("Invalid vehicle ID %s: %v", vehicleID, err)
			http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
			return
		}

		res, err := config.VehicleCollection.DeleteOne(r.Context(), bson.M{"_id": objID})
		if err != nil {
			log.Printf("Delete failed for vehicle %s: %v", vehicleID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		if res.DeletedCount == 0 {
			log.Printf("No vehicle found with ID %s", vehicleID)
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}

		go deleteVehicleCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":      "Vehicle deleted successfully",
			"deletedCount": res.DeletedCount,
		})
	}
}

func generateCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		// Sort a copy: the handler still reads the request's value order.
		values := append([]string(nil), queryParams[key]...)
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "vehicles:" + hex.EncodeToString(sum[:])
}

func deleteVehicleCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "vehicles:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d vehicle cache keys: %v", len(keysToDelete), err)
		return
	}
	log.Printf("Vehicle cache invalidated: deleted %d keys", len(keysToDelete))
}

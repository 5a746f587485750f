package routes

import (
	"github.com/crcab-dev/car_rental_backend/controllers"
	"github.com/crcab-dev/car_rental_backend/middleware"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

func Routes(router *mux.Router, redisClient *redis.Client) {
	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser()).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser()).Methods("POST")

	// Public catalog routes
	router.HandleFunc("/vehicles", controllers.GetAllVehicles(redisClient)).Methods("GET")
	router.HandleFunc("/vehicles/{id}", controllers.GetVehicleByID()).Methods("GET")
	router.HandleFunc("/catalog", controllers.BrowseCatalog()).Methods("GET")
	router.HandleFunc("/chat", controllers.Chat()).Methods("POST")

	// Mutations require authentication
	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	authenticated.HandleFunc("/vehicles", controllers.CreateVehicle(redisClient)).Methods("POST")
	authenticated.HandleFunc("/vehicles/{id}", controllers.UpdateVehicle(redisClient)).Methods("PUT")
	authenticated.HandleFunc("/vehicles/{id}", controllers.DeleteVehicle(redisClient)).Methods("DELETE")
	authenticated.HandleFunc("/upload", controllers.UploadImage()).Methods("POST")
}

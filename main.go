package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geo-service/handlers"
	"geo-service/middleware"
	"geo-service/repository"
	"geo-service/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment configuration")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is not set")
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "poi_db"
	}
	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	// Connect to MongoDB. The client handle is shared by all requests and
	// released on shutdown.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	poiRepository := repository.NewMongoPOIRepository(client.Database(dbName))
	if err := poiRepository.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create geo index: %v", err)
	}

	// Initialize services and handlers
	poiService := services.NewPOIService(poiRepository)
	poiHandler := handlers.NewPOIHandler(poiService)
	statsHandler := handlers.NewStatsHandler(poiService)

	r := mux.NewRouter()

	// CORS middleware
	allowedOrigins := []string{"*"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorMiddleware())

	// POI routes
	r.HandleFunc("/poi", poiHandler.ListPOIs).Methods("GET", "OPTIONS")
	r.HandleFunc("/poi", poiHandler.CreatePOI).Methods("POST", "OPTIONS")
	r.HandleFunc("/poi/{id}", poiHandler.GetPOI).Methods("GET", "OPTIONS")
	r.HandleFunc("/poi/{id}", poiHandler.UpdatePOI).Methods("PUT", "OPTIONS")
	r.HandleFunc("/poi/{id}", poiHandler.DeletePOI).Methods("DELETE", "OPTIONS")

	// Category and stats routes
	r.HandleFunc("/categories", statsHandler.GetCategories).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/category/{category}", statsHandler.GetCategoryCount).Methods("GET", "OPTIONS")

	srv := &http.Server{Addr: listenAddr, Handler: r}

	go func() {
		log.Printf("Server starting on %s", listenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}
}

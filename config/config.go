// Package config centralises environment configuration and the database
// connection.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config captures runtime configuration, with defaults suitable for local dev.
type Config struct {
	HTTPAddress   string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	DatasetPath   string
	GeminiAPIKey  string
	GeminiModel   string
	GinMode       string
}

// Load reads .env (if present) and the environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, relying on environment")
	}

	return Config{
		HTTPAddress:   ":" + getEnv("PORT", "8000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "trainx"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecretkey"),
		DatasetPath:   getEnv("DATASET_PATH", "dataset/exercises.csv"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

// ConnectMongo dials the cluster and verifies it is reachable before the
// server starts taking requests.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

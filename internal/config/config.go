package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	DBUsername  string
	DBPassword  string
	DBHost      string
	DBName      string
	MongoURI    string
	Port        string
	Environment string
}

// Load reads configs/.env if present, then resolves configuration from
// environment variables with local-development defaults.
func Load() *Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := &Config{
		DBUsername:  os.Getenv("DB_USERNAME"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      os.Getenv("DB_HOST"),
		DBName:      os.Getenv("DB_NAME"),
		MongoURI:    os.Getenv("MONGO_URI"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.DBHost == "" {
		cfg.DBHost = "localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "School_Management"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg
}

// StoreURI returns the connection string for the document store. MONGO_URI
// wins when set; otherwise the URI is assembled from the credential pair and
// host, falling back to an unauthenticated local instance.
func (c *Config) StoreURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUsername != "" && c.DBPassword != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.DBUsername, c.DBPassword, c.DBHost)
	}
	return "mongodb://" + c.DBHost
}

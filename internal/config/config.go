package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	AllowedOrigins  []string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bistroDB"
	}

	origins := []string{"http://localhost:5173", "http://localhost:5174"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return Config{
		Port:            port,
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          dbName,
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AllowedOrigins:  origins,
	}
}

package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting the CORS origin list

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string   // Listen port, default 3000
	DBUser         string   // Database user
	DBPassword     string   // Database password
	DBHost         string   // Database host
	DBPort         string   // Database port
	DBName         string   // Database name
	APIKey         string   // Shared key gating mutation routes
	JWTSecret      string   // JWT signing secret
	InternalSecret string   // Optional x-internal-admin secret, empty disables the check
	CloudName      string   // Cloudinary cloud name (optional)
	CloudAPIKey    string   // Cloudinary API key (optional)
	CloudAPISecret string   // Cloudinary API secret (optional)
	CORSOrigins    []string // Allowed CORS origins
	RedisAddr      string   // Redis server address, empty disables caching
	RedisPass      string   // Redis password
	RedisDB        int      // Redis database number
	IsProd         bool     // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),          // Listen port
		DBUser:         os.Getenv("DB_USER"),                // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),            // Database password
		DBHost:         os.Getenv("DB_HOST"),                // Database host
		DBPort:         os.Getenv("DB_PORT"),                // Database port
		DBName:         os.Getenv("DB_NAME"),                // Database name
		APIKey:         os.Getenv("API_KEY"),                // Mutation API key
		JWTSecret:      os.Getenv("JWT_SECRET"),             // JWT signing secret
		InternalSecret: os.Getenv("INTERNAL_ADMIN_SECRET"),  // Optional internal secret
		CloudName:      os.Getenv("CLOUDINARY_CLOUD_NAME"),  // Cloudinary cloud name
		CloudAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),     // Cloudinary API key
		CloudAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),  // Cloudinary API secret
		CORSOrigins:    splitOrigins(os.Getenv("CORS_ORIGINS")),
		RedisAddr:      os.Getenv("REDIS_ADDR"),             // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),             // Redis password
		RedisDB:        redisDB,                             // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true",      // Is production environment
	}
}

// getEnv returns the value of the environment variable or a default
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list
func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5173"} // Default frontend origin
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

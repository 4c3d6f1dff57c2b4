package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string
	DiscoveryBurst  int
	DiscoveryRefill int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DiscoveryBurst:  getEnvAsInt("DISCOVERY_RATE_BURST", 30),
		DiscoveryRefill: getEnvAsInt("DISCOVERY_RATE_REFILL", 10),
	}

	return config, nil
}

// UseMemoryStores reports whether the in-memory backend should be used
// instead of Firestore. Local development runs without a Firebase project.
func (c *Config) UseMemoryStores() bool {
	return c.FirebaseProject == ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

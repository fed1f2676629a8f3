package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings that are not database related. Database
// settings are read directly by db.Connect.
type Config struct {
	ListenAddr string
	JWTSecret  string
}

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("missing required configuration: JWT_SECRET")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:3536"
	}

	return &Config{
		ListenAddr: addr,
		JWTSecret:  secret,
	}, nil
}

package configs

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string         `env:"PORT" envDefault:"3000"`
	AlertThreshold float64        `env:"ALERT_THRESHOLD" envDefault:"2.5"`
	LogDir         string         `env:"LOG_DIR" envDefault:"./logs"`
	SeedOnBoot     bool           `env:"SEED_ON_BOOT" envDefault:"false"`
	Database       DatabaseConfig `envPrefix:"DB_"`
}

type DatabaseConfig struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME"`
	SSLMode  string `env:"SSLMODE" envDefault:"require"`
}

// App holds the parsed configuration for the whole process.
var App Config

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	if err := env.Parse(&App); err != nil {
		log.Fatalf("❌ Failed to parse ENV config: %v", err)
	}

	if App.Database.Name == "" {
		log.Println("❌ DB_NAME is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

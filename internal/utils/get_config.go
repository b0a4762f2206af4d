package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT"`
	LogLevel string `yaml:"LOG_LEVEL"`
	LogDir   string `yaml:"LOG_DIR"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT and admin account
	JWTSecret         string `yaml:"JWT_SECRET"`
	AdminUsername     string `yaml:"ADMIN_USERNAME"`
	AdminPasswordHash string `yaml:"ADMIN_PASSWORD_HASH"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
	AWSPublicURL string `yaml:"AWS_PUBLIC_URL"`
}

var config Config

var configKeys = []string{
	"APP_PORT", "LOG_LEVEL", "LOG_DIR",
	"DB_DRIVER", "DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST",
	"JWT_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH",
	"AWS_S3_BUCKET", "AWS_S3_REGION", "AWS_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_PUBLIC_URL",
}

// LoadConfig reads config.yaml, then lets .env and the process environment
// override single keys.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	// a missing .env is normal outside local development
	_ = godotenv.Load()

	for _, key := range configKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			setConfig(key, v)
		}
	}
	applyDefaults()
}

func applyDefaults() {
	if config.AppPort == "" {
		config.AppPort = "8080"
	}
	if config.DBDriver == "" {
		config.DBDriver = "postgres"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogDir == "" {
		config.LogDir = "./logs"
	}
	if config.AdminUsername == "" {
		config.AdminUsername = "admin"
	}
}

func setConfig(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "LOG_LEVEL":
		config.LogLevel = value
	case "LOG_DIR":
		config.LogDir = value
	case "DB_DRIVER":
		config.DBDriver = value
	case "DB_USER":
		config.DBUser = value
	case "DB_NAME":
		config.DBName = value
	case "DB_PASSWORD":
		config.DBPassword = value
	case "DB_PORT":
		config.DBPort = value
	case "DB_HOST":
		config.DBHost = value
	case "JWT_SECRET":
		config.JWTSecret = value
	case "ADMIN_USERNAME":
		config.AdminUsername = value
	case "ADMIN_PASSWORD_HASH":
		config.AdminPasswordHash = value
	case "AWS_S3_BUCKET":
		config.AWSS3Bucket = value
	case "AWS_S3_REGION":
		config.AWSS3Region = value
	case "AWS_ACCESS_KEY":
		config.AWSAccessKey = value
	case "AWS_SECRET_KEY":
		config.AWSSecretKey = value
	case "AWS_PUBLIC_URL":
		config.AWSPublicURL = value
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_DIR":
		return config.LogDir
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "ADMIN_USERNAME":
		return config.AdminUsername
	case "ADMIN_PASSWORD_HASH":
		return config.AdminPasswordHash
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AWS_PUBLIC_URL":
		return config.AWSPublicURL
	default:
		return ""
	}
}

package main

import (
	"os"
	"path"

	"github.com/joho/godotenv"
)

type Config struct {
	RootDir     string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadConfig reads RAYTRACE_* settings from the environment, falling back to
// a .env file in RAYTRACE_ROOT_DIR. The process environment wins.
func LoadConfig() *Config {
	rootDir := getEnv("RAYTRACE_ROOT_DIR", ".")
	dotenv, err := godotenv.Read(path.Join(rootDir, ".env"))
	if err != nil {
		dotenv = map[string]string{}
	}
	lookup := func(key, fallback string) string {
		if value, ok := dotenv[key]; ok {
			fallback = value
		}
		return getEnv(key, fallback)
	}

	return &Config{
		RootDir:     rootDir,
		S3AccessKey: lookup("RAYTRACE_S3_ACCESS_KEY", ""),
		S3SecretKey: lookup("RAYTRACE_S3_SECRET_KEY", ""),
		S3Endpoint:  lookup("RAYTRACE_S3_ENDPOINT", ""),
		S3Region:    lookup("RAYTRACE_S3_REGION", "us-east-1"),
		S3Bucket:    lookup("RAYTRACE_S3_BUCKET", ""),
	}
}

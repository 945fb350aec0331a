package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("RAYTRACE_TEST_VALUE", "set")
	if got := getEnv("RAYTRACE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("expected set, got %q", got)
	}
	if got := getEnv("RAYTRACE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "RAYTRACE_S3_BUCKET=renders\nRAYTRACE_S3_REGION=eu-west-1\nRAYTRACE_S3_ENDPOINT=http://localhost:9000\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAYTRACE_ROOT_DIR", dir)
	t.Setenv("RAYTRACE_S3_REGION", "us-west-2")

	cfg := LoadConfig()
	if cfg.RootDir != dir {
		t.Errorf("expected root %q, got %q", dir, cfg.RootDir)
	}
	if cfg.S3Bucket != "renders" || cfg.S3Endpoint != "http://localhost:9000" {
		t.Errorf(".env values not loaded: %+v", cfg)
	}
	if cfg.S3Region != "us-west-2" {
		t.Errorf("environment should override .env, got region %q", cfg.S3Region)
	}
	if _, set := os.LookupEnv("RAYTRACE_S3_BUCKET"); set {
		t.Error("LoadConfig should not modify the process environment")
	}
}

func TestLoadConfigWithoutDotEnv(t *testing.T) {
	t.Setenv("RAYTRACE_ROOT_DIR", t.TempDir())
	cfg := LoadConfig()
	if cfg.S3Region != "us-east-1" {
		t.Errorf("expected default region, got %q", cfg.S3Region)
	}
}

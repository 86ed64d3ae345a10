package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.SchemaPath != "db/schema.sql" {
		t.Errorf("Expected schema_path to be 'db/schema.sql', got '%s'", config.SchemaPath)
	}

	if config.ExportPath != "db/export" {
		t.Errorf("Expected export_path to be 'db/export', got '%s'", config.ExportPath)
	}

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}

	if config.Generate.Preset != "small" {
		t.Errorf("Expected generate preset to be 'small', got '%s'", config.Generate.Preset)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()

	config.Database.Provider = "mongodb"
	if err := config.Validate(); err == nil {
		t.Error("Expected validation to fail for unsupported provider")
	}

	config = DefaultConfig()
	config.Generate.Format = "xml"
	if err := config.Validate(); err == nil {
		t.Error("Expected validation to fail for unsupported export format")
	}

	config = DefaultConfig()
	config.ExportPath = ""
	if err := config.Validate(); err == nil {
		t.Error("Expected validation to fail for empty export_path")
	}
}

func TestGetDatabaseURL(t *testing.T) {
	config := DefaultConfig()
	config.Database.URLEnv = "STOCKFORGE_TEST_DB_URL"

	os.Unsetenv("STOCKFORGE_TEST_DB_URL")
	if _, err := config.GetDatabaseURL(); err == nil {
		t.Error("Expected an error when the environment variable is unset")
	}

	os.Setenv("STOCKFORGE_TEST_DB_URL", "postgres://localhost:5432/test")
	defer os.Unsetenv("STOCKFORGE_TEST_DB_URL")

	url, err := config.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Failed to get database URL: %v", err)
	}
	if url != "postgres://localhost:5432/test" {
		t.Errorf("Expected URL from environment, got '%s'", url)
	}
}

func TestInitializeProject(t *testing.T) {
	// Create a temporary directory for testing
	tempDir, err := os.MkdirTemp("", "stockforge-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Change to temp directory
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	// Test initialization
	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	// Check if config file was created
	configPath := filepath.Join(tempDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	// Check if directories were created
	dirs := []string{"db/export", "db"}
	for _, dir := range dirs {
		dirPath := filepath.Join(tempDir, dir)
		if _, err := os.Stat(dirPath); os.IsNotExist(err) {
			t.Errorf("Directory %s was not created", dir)
		}
	}

	// Test that second initialization fails
	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "GREETING_NAME", "BASE_URL",
		"INVENTORY_FILE", "STORAGE_BACKEND", "IMAGE_DIR", "STORAGE_USE_SSL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q; expected 8080", cfg.Port)
	}
	if cfg.GreetingName != "Evans" {
		t.Errorf("GreetingName = %q; expected Evans", cfg.GreetingName)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q; expected empty", cfg.BaseURL)
	}
	if cfg.InventoryFile != "data/inventory.json" {
		t.Errorf("InventoryFile = %q; expected data/inventory.json", cfg.InventoryFile)
	}
	if cfg.StorageBackend != "local" {
		t.Errorf("StorageBackend = %q; expected local", cfg.StorageBackend)
	}
	if cfg.ImageDir != "images" {
		t.Errorf("ImageDir = %q; expected images", cfg.ImageDir)
	}
	if cfg.StorageUseSSL {
		t.Errorf("StorageUseSSL = true; expected false")
	}
	if cfg.IsProduction() {
		t.Errorf("IsProduction() = true for default env")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BASE_URL", "https://example.ngrok.app")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q; expected 9999", cfg.Port)
	}
	if cfg.BaseURL != "https://example.ngrok.app" {
		t.Errorf("BaseURL = %q; expected the ngrok URL", cfg.BaseURL)
	}
	if cfg.StorageBackend != "s3" {
		t.Errorf("StorageBackend = %q; expected s3", cfg.StorageBackend)
	}
	if !cfg.StorageUseSSL {
		t.Errorf("StorageUseSSL = false; expected true")
	}
	if !cfg.IsProduction() {
		t.Errorf("IsProduction() = false; expected true")
	}
}

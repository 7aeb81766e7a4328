package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/etc/creds/service-account.json")
	t.Setenv("USERS_COLLECTION", "members")
	t.Setenv("EMAIL_ADDRESS", "noreply@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.ProjectID != "demo-project" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.CredentialsFile != "/etc/creds/service-account.json" {
		t.Fatalf("unexpected credentials file: %s", cfg.CredentialsFile)
	}
	if cfg.UsersCollection != "members" {
		t.Fatalf("unexpected collection: %s", cfg.UsersCollection)
	}
	if cfg.SMTP.Host != "smtp.example.com" || cfg.SMTP.Port != 2525 {
		t.Fatalf("unexpected smtp config: %+v", cfg.SMTP)
	}
	if cfg.SMTP.Username != "noreply@example.com" || cfg.SMTP.Password != "app-password" {
		t.Fatalf("unexpected smtp credentials: %+v", cfg.SMTP)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "USERS_COLLECTION", "SMTP_HOST", "SMTP_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.UsersCollection != "users" {
		t.Fatalf("expected default collection users, got %s", cfg.UsersCollection)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != 587 {
		t.Fatalf("unexpected smtp defaults: %+v", cfg.SMTP)
	}
}

func TestLoad_InvalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid smtp port")
	}

	t.Setenv("SMTP_PORT", "-25")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative smtp port")
	}
}

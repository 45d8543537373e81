package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DB.Driver != "sqlite" || cfg.DB.DSN != "data/gym.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Security.BcryptCost != 12 || cfg.Security.ConfirmationTTL != 5*time.Minute {
		t.Fatalf("unexpected security defaults: %+v", cfg.Security)
	}
	if cfg.Mongo.URI != "" || cfg.Mongo.Workers != 4 {
		t.Fatalf("unexpected audit defaults: %+v", cfg.Mongo)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development profile")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":             "9090",
		"ENV":              "production",
		"DB_DRIVER":        "postgres",
		"DB_DSN":           "postgres://gym@localhost/gym",
		"BCRYPT_COST":      "10",
		"CONFIRMATION_TTL": "90s",
		"MONGO_URI":        "mongodb://localhost:27017",
		"REDIS_DB":         "2",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.DB.Driver != "postgres" || cfg.Security.BcryptCost != 10 || cfg.Security.ConfirmationTTL != 90*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Redis.DB != 2 || cfg.Mongo.URI == "" {
		t.Fatalf("unexpected stores: %+v %+v", cfg.Redis, cfg.Mongo)
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad cost":     {"BCRYPT_COST": "twelve"},
		"bad ttl":      {"CONFIRMATION_TTL": "soon"},
		"negative ttl": {"CONFIRMATION_TTL": "-1m"},
	} {
		if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

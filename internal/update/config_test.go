package update

import (
	"testing"

	"github.com/sandeepkv93/habitd/internal/calendar"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.WeekStartsOn != calendar.WeekStartMonday {
		t.Fatalf("default week start = %s, want Monday", cfg.WeekStartsOn)
	}
	if cfg.DBPath == "" {
		t.Fatal("default db path must not be empty")
	}
	if cfg.StateFile != "" {
		t.Fatal("state file must default to unset")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("HABITD_WEEK_STARTS_ON", "Sunday")
	t.Setenv("HABITD_DB_PATH", "/tmp/custom.db")
	t.Setenv("HABITD_STATE_FILE", "/tmp/state.json")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.WeekStartsOn != calendar.WeekStartSunday {
		t.Fatalf("week start = %s, want Sunday", cfg.WeekStartsOn)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path = %s", cfg.DBPath)
	}
	if cfg.StateFile != "/tmp/state.json" {
		t.Fatalf("state file = %s", cfg.StateFile)
	}
}

func TestRuntimeConfigIgnoresEmptyEnv(t *testing.T) {
	t.Setenv("HABITD_WEEK_STARTS_ON", "   ")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.WeekStartsOn != calendar.WeekStartMonday {
		t.Fatalf("blank env must keep default, got %s", cfg.WeekStartsOn)
	}
}

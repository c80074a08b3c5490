package update

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/habitd/internal/calendar"
)

type RuntimeConfig struct {
	WeekStartsOn calendar.WeekStart
	DBPath       string
	StateFile    string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		WeekStartsOn: calendar.WeekStartMonday,
		DBPath:       defaultDBPath(),
		StateFile:    "",
	}
}

// RuntimeConfigFromEnv overlays HABITD_* variables. HABITD_STATE_FILE, when
// set, switches persistence from the SQLite store to a plain JSON file.
func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvStr("HABITD_WEEK_STARTS_ON"); ok {
		cfg.WeekStartsOn = calendar.ParseWeekStart(strings.ToLower(v))
	}
	if v, ok := getEnvStr("HABITD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvStr("HABITD_STATE_FILE"); ok {
		cfg.StateFile = v
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "habitd.db"
	}
	return filepath.Join(home, ".habitd", "habitd.db")
}

func getEnvStr(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

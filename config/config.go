package config

import (
	"os"
	"path/filepath"
	"time"
)

// Server config
const DEFAULT_ADDR = ":8080"
const DEFAULT_SHUTDOWN_TIMEOUT = 5 * time.Second

// Time zone of the cafeteria, deciding which weekday is today
const DEFAULT_TIMEZONE = "America/Sao_Paulo"

// Storage backends
const STORAGE_MEMORY = "memory"
const STORAGE_REDIS = "redis"
const STORAGE_SQLITE = "sqlite"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// SQLite Config
const SQLITE_DB_PATH = "data/cardapio.db"

// Visitor storage keys, one namespace per profile cookie.
const THEME_STORAGE_KEY = "nj-theme"
const COMMENTS_STORAGE_KEY = "nj-comentarios"
const PROFILE_COOKIE_NAME = "nj-profile"

// Admin gate. Cosmetic only, never a security boundary.
const DEFAULT_ADMIN_SECRET = "nutri123"

// In-memory tab state (admin sessions, picked dish of the day)
const TAB_STATE_IDLE_TTL = 12 * time.Hour
const SESSION_SWEEPER_SERVICE_SCHEDULE_MINUTES = 10

// Menu rendering
const DEFAULT_DISH_OF_DAY_INDEX = 3
const CARD_ANIMATION_STEP = 60 * time.Millisecond

// Search input debounce per layout
const FLAT_SEARCH_DEBOUNCE = 180 * time.Millisecond
const WEEKLY_SEARCH_DEBOUNCE = 160 * time.Millisecond

// Menu document fetch
const MENU_FETCH_TIMEOUT = 10 * time.Second

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const MENU_DOCUMENT_RESOURCE = "cardapio.json"
const WEEKLY_MENU_DOCUMENT_RESOURCE = "cardapio_semana.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

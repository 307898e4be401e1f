package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_DEFAULT_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Catalog feed endpoint (remote ingestion source)
const CATALOG_FEED_ENDPOINT_BASE_V1 = "https://feed.outings.internal/api/v1"

// HTTP server config
const HTTP_LISTEN_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CATALOG_SNAPSHOT_RESOURCE = "catalog_snapshot.json"

// LoadEnv loads a .env file if one exists next to the binary. Missing
// files are fine; explicit environment variables always win.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("[Config] Loaded environment from .env")
	}
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDR override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_DEFAULT_ADDRESS
}

// Env returns the runtime environment name ("prod" by default).
func Env() string {
	if env := os.Getenv("OUTINGS_ENV"); env != "" {
		return env
	}
	return "prod"
}

// PlotDemoEnabled reports whether startup should render the demo search
// map. Off unless OUTINGS_PLOT_DEMO is set to a truthy value.
func PlotDemoEnabled() bool {
	enabled, err := strconv.ParseBool(os.Getenv("OUTINGS_PLOT_DEMO"))
	return err == nil && enabled
}

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

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

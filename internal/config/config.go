package config

import (
	"fmt"
	"os"
	"strings"
)

// Run modes. Dev enables CORS for a frontend dev server; release switches
// gin to release mode.
const (
	ModeDev     = "dev"
	ModeRelease = "release"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL       string
	Addr        string
	Mode        string
	CORSOrigins []string
}

// Load reads required values from environment variables.
//
//	DB_URL        required, Postgres connection string
//	ADDR          listen address, default ":8080"
//	MODE          "dev" or "release", default "dev"
//	CORS_ORIGINS  comma-separated, default "http://localhost:3000"
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL required")
	}

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	mode := strings.TrimSpace(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeDev
	}
	if mode != ModeDev && mode != ModeRelease {
		return Config{}, fmt.Errorf("MODE must be %q or %q", ModeDev, ModeRelease)
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return Config{
		DBURL:       dbURL,
		Addr:        addr,
		Mode:        mode,
		CORSOrigins: origins,
	}, nil
}

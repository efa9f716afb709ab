package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// DBPath is the sqlite file; empty keeps the catalog in memory.
	DBPath string

	// Matching knobs, consumed by the matcher, not owned by it.
	MatchThreshold  int
	ExcludeKeywords []string // empty → built-in defaults
	ExcludeSymbols  string   // regexp source; "-" disables symbol stripping
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	threshold, _ := strconv.Atoi(getenv("MATCH_THRESHOLD", "10"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")

	var keywords []string
	if v := os.Getenv("EXCLUDE_KEYWORDS"); v != "" {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
	}

	return Config{
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		MaxUploadMB:     mb,
		LogFile:         getenv("LOG_FILE", "logs/figure-catalog.log"),
		DBPath:          os.Getenv("DB_PATH"),
		MatchThreshold:  threshold,
		ExcludeKeywords: keywords,
		ExcludeSymbols:  os.Getenv("EXCLUDE_SYMBOLS"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package framework

import (
	"os"
	"strings"
	"time"

	"github.com/neutree-ai/bouncer-probe/internal/check"
	"github.com/neutree-ai/bouncer-probe/internal/util"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

// defaultVersions are served by the fake bouncer when no bouncer URL is configured.
const defaultVersions = "firefox-latest=63.0,firefox-beta-latest=64.0b3,firefox-nightly-latest=65.0a1,firefox-aurora=54.0a2"

// Config holds the test configuration loaded from environment variables.
type Config struct {
	BouncerURL string            // Bouncer URL, empty to run against the in-process fake
	CDNHosts   []string          // Hosts the bouncer may redirect to
	Locale     string            // Accept-Language and lang param
	UserAgent  string            // User-Agent sent with every probe
	Versions   map[string]string // Release alias to the version it serves
	Timeout    time.Duration     // Timeout of each request stage
}

// NewConfigFromEnv creates a new Config from environment variables.
func NewConfigFromEnv() *Config {
	return &Config{
		BouncerURL: getEnv("E2E_BOUNCER_URL", ""),
		CDNHosts:   util.SplitList(getEnv("E2E_CDN_HOSTS", strings.Join(check.DefaultCDNHosts, ","))),
		Locale:     getEnv("E2E_LOCALE", bouncer.DefaultLocale),
		UserAgent:  getEnv("E2E_USER_AGENT", bouncer.DefaultUserAgent),
		Versions:   parseVersions(getEnv("E2E_VERSIONS", defaultVersions)),
		Timeout:    getDurationEnv("E2E_TIMEOUT", bouncer.DefaultTimeout),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// parseVersions parses "alias=version,alias=version". Malformed entries are skipped.
func parseVersions(s string) map[string]string {
	versions := map[string]string{}

	for _, entry := range util.SplitList(s) {
		alias, version, ok := strings.Cut(entry, "=")
		alias, version = strings.TrimSpace(alias), strings.TrimSpace(version)
		if !ok || alias == "" || version == "" {
			continue
		}
		versions[alias] = version
	}

	return versions
}

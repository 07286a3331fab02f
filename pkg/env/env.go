package env

import (
	"os"
	"strings"
)

// Prefix namespaces the dashboard's environment variables.
const Prefix = "DASHBOARD_"

// Get returns DASHBOARD_<key> when set, then the bare key, then fallback.
// Blank values count as unset.
func Get(key, fallback string) string {
	for _, name := range []string{Prefix + key, key} {
		if val := strings.TrimSpace(os.Getenv(name)); val != "" {
			return val
		}
	}
	return fallback
}

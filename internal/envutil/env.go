// Package envutil provides environment variable lookups with defaults.
package envutil

import (
	"os"
	"strconv"
	"strings"
)

// Get returns the trimmed value of key, or defaultVal when unset or blank.
func Get(key, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return defaultVal
	}
	return val
}

// GetInt returns key parsed as int, or defaultVal when unset or unparsable.
func GetInt(key string, defaultVal int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return defaultVal
	}
	return i
}

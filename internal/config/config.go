package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// DefaultIncrement is the priority bump applied on every resolve.
const DefaultIncrement uint32 = 10

// StorePath returns the store file path from the WARP_STORE env var,
// falling back to dirs.csv under the user data directory.
func StorePath() string {
	if env := os.Getenv("WARP_STORE"); env != "" {
		return env
	}
	return filepath.Join(dataDir(), "dirs.csv")
}

// HistoryPath returns the history file path from the WARP_HISTORY env var,
// falling back to hist.csv next to the store.
func HistoryPath() string {
	if env := os.Getenv("WARP_HISTORY"); env != "" {
		return env
	}
	return filepath.Join(dataDir(), "hist.csv")
}

// Increment returns the priority increment from the WARP_INCREMENT env var,
// falling back to DefaultIncrement. Values that do not parse as a uint32
// fall back too.
func Increment() uint32 {
	env := os.Getenv("WARP_INCREMENT")
	if env == "" {
		return DefaultIncrement
	}
	n, err := strconv.ParseUint(env, 10, 32)
	if err != nil {
		return DefaultIncrement
	}
	return uint32(n)
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "warp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "warp"
	}
	return filepath.Join(home, ".local", "share", "warp")
}

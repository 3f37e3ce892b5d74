package config

import (
	"os"
	"path/filepath"
)

// DBPath returns the database path from the KGRAPH_DB env var, falling
// back to the XDG data directory.
func DBPath() string {
	if env := os.Getenv("KGRAPH_DB"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "kg.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "kgraph", "kg.db")
}

// Transport returns the MCP transport from KGRAPH_TRANSPORT,
// defaulting to stdio.
func Transport() string {
	if env := os.Getenv("KGRAPH_TRANSPORT"); env != "" {
		return env
	}
	return "stdio"
}

// Addr returns the listen address for the http transport from
// KGRAPH_ADDR.
func Addr() string {
	if env := os.Getenv("KGRAPH_ADDR"); env != "" {
		return env
	}
	return ":8099"
}

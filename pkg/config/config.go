// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Settings holds the directories and profile path the extraction tool
// operates with.
type Settings struct {
	// UploadsDir is where input PDFs are picked up.
	UploadsDir string
	// DiagramsDir is where extracted product diagrams are written.
	DiagramsDir string
	// ProfilePath optionally points at a YAML extraction profile; empty
	// means the built-in defaults.
	ProfilePath string
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		UploadsDir:  envOr("RELAYSPEC_UPLOADS_DIR", "uploads/pdfs"),
		DiagramsDir: envOr("RELAYSPEC_DIAGRAMS_DIR", "diagrams"),
		ProfilePath: os.Getenv("RELAYSPEC_PROFILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

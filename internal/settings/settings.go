// Package settings handles persistence of the athlete credentials.
// Credentials are stored as a small JSON object, by default at
// ~/.config/trainbar/settings.json.
package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/quabes/trainbar/internal/intervals"
)

const (
	defaultSettingsPath = "~/.config/trainbar/settings.json"

	defaultUsername  = "API_KEY"
	defaultPassword  = ""
	defaultAthleteID = "0"
)

// fileSchema is the on-disk shape. The key names are a compatibility
// contract with existing settings files; do not rename them.
type fileSchema struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AthleteID string `json:"athlete_id"`
}

// DefaultPath returns the default settings file path.
func DefaultPath() string {
	return defaultSettingsPath
}

// Defaults returns the built-in placeholder credentials.
func Defaults() intervals.Credentials {
	return intervals.Credentials{
		Username:  defaultUsername,
		Password:  defaultPassword,
		AthleteID: defaultAthleteID,
	}
}

// Load reads credentials from the given path, substituting the built-in
// default for any field that is missing or empty. A missing or unreadable
// file degrades to defaults with a logged diagnostic; Load never fails.
func Load(path string) intervals.Credentials {
	creds := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		log.Printf("settings: resolve path failed: %v", err)
		return creds
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("settings: read %s failed: %v", resolved, err)
		}
		return creds
	}

	var saved fileSchema
	if err := json.Unmarshal(bytes, &saved); err != nil {
		log.Printf("settings: parse %s failed: %v", resolved, err)
		return creds
	}

	if strings.TrimSpace(saved.Username) != "" {
		creds.Username = saved.Username
	}
	creds.Password = saved.Password
	if strings.TrimSpace(saved.AthleteID) != "" {
		creds.AthleteID = saved.AthleteID
	}
	return creds
}

// Save writes credentials to the given path, creating directories as
// needed and overwriting any existing file. Callers treat failure as
// non-fatal: the in-memory credentials stay valid for the session.
func Save(path string, creds intervals.Credentials) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	bytes, err := json.Marshal(fileSchema{
		Username:  creds.Username,
		Password:  creds.Password,
		AthleteID: creds.AthleteID,
	})
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSettingsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

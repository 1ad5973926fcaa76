package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

type Settings struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	CachePath    string `json:"cache_path"`
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "shaderbin")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// GetCachePath returns the default location of the program binary
// cache file, creating its parent directory.
func GetCachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, "shaderbin")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "program.bin"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}

	defaultSettings := &Settings{
		WindowWidth:  800,
		WindowHeight: 600,
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	return ParseSettings(data, defaultSettings), nil
}

// ParseSettings decodes data, warning about unrecognised keys and
// falling back to defaults for invalid content or out-of-range values.
func ParseSettings(data []byte, defaults *Settings) *Settings {
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults
	}

	if settings.WindowWidth < 1 {
		log.Printf("Invalid window_width value %d, using default %d",
			settings.WindowWidth, defaults.WindowWidth)
		settings.WindowWidth = defaults.WindowWidth
	}
	if settings.WindowHeight < 1 {
		log.Printf("Invalid window_height value %d, using default %d",
			settings.WindowHeight, defaults.WindowHeight)
		settings.WindowHeight = defaults.WindowHeight
	}

	return settings
}

// ResolveCachePath returns the cache file path from settings, or the
// default user cache location when unset.
func (s *Settings) ResolveCachePath() (string, error) {
	if s.CachePath != "" {
		return s.CachePath, nil
	}
	return GetCachePath()
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}

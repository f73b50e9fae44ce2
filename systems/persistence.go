package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-input/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Profile   string `json:"profile"`
	ShowHUD   bool   `json:"showHud"`
	LogEvents bool   `json:"logEvents"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings selects the saved profile and debug toggles.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if i, ok := cfg.Input.ProfileIndex(saved.Profile); ok {
		cfg.Input.ActiveProfile = i
	} else if saved.Profile != "" {
		log.Printf("Warning: saved profile %q no longer exists", saved.Profile)
	}
	cfg.Debug.ShowHUD = saved.ShowHUD
	cfg.Debug.LogEvents = saved.LogEvents
}

// SaveCurrentSettings persists the active profile and debug toggles.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		Profile:   cfg.Input.Active().Name,
		ShowHUD:   cfg.Debug.ShowHUD,
		LogEvents: cfg.Debug.LogEvents,
	})
}

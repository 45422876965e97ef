package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/strider/config"
)

// SavedSettings represents the controller tuning stored on disk.
type SavedSettings struct {
	MouseSensitivity      float64 `json:"mouseSensitivity"`
	ControllerSensitivity float64 `json:"controllerSensitivity"`
	InvertY               bool    `json:"invertY"`
	Deadzone              float64 `json:"deadzone"`
	ControllerSmoothing   float64 `json:"controllerSmoothing"`
	MouseSmoothing        float64 `json:"mouseSmoothing"`
	Overlay               bool    `json:"overlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable save
// returns nil without error so defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk.
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

// CurrentSettings snapshots the live controller tuning for saving.
func CurrentSettings(overlay bool) *SavedSettings {
	c := &cfg.Controller
	return &SavedSettings{
		MouseSensitivity:      c.MouseLookSensitivity,
		ControllerSensitivity: c.ControllerLookSensitivity,
		InvertY:               c.InvertY,
		Deadzone:              c.ControllerDeadzone,
		ControllerSmoothing:   c.ControllerLookSmoothing,
		MouseSmoothing:        c.MouseLookSmoothing,
		Overlay:               overlay,
	}
}

// ApplySavedSettings overlays persisted tuning onto the config defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	c := &cfg.Controller
	if saved.MouseSensitivity > 0 {
		c.MouseLookSensitivity = saved.MouseSensitivity
	}
	if saved.ControllerSensitivity > 0 {
		c.ControllerLookSensitivity = saved.ControllerSensitivity
	}
	c.InvertY = saved.InvertY
	if saved.Deadzone >= 0 && saved.Deadzone <= 0.5 {
		c.ControllerDeadzone = saved.Deadzone
	}
	if saved.ControllerSmoothing >= 0 {
		c.ControllerLookSmoothing = saved.ControllerSmoothing
	}
	if saved.MouseSmoothing >= 0 {
		c.MouseLookSmoothing = saved.MouseSmoothing
	}
	cfg.Debug.Overlay = saved.Overlay
}

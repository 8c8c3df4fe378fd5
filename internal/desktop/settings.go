package desktop

import (
	"github.com/bornholm/orders/internal/config"
	"github.com/kirsle/configdir"
)

const UserAgentPrefix string = "Orders-Desktop"

var DefaultSettings = Settings{
	WindowWidth:  800,
	WindowHeight: 900,
}

// Settings of the desktop window. They are read once at startup.
type Settings struct {
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`
}

// Normalized replaces unusable dimensions with the default ones.
func (s Settings) Normalized() Settings {
	if s.WindowWidth < 320 {
		s.WindowWidth = DefaultSettings.WindowWidth
	}

	if s.WindowHeight < 240 {
		s.WindowHeight = DefaultSettings.WindowHeight
	}

	return s
}

// NewSettingsStore returns the store of the desktop settings, kept in the
// user configuration directory.
func NewSettingsStore() *SettingsStore[Settings] {
	return NewStore(configdir.LocalConfig(config.AppName), DefaultSettings)
}

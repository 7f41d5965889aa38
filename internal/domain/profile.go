package domain

import (
	"time"
)

// Units selects how measurements are shown to the user.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds the per-profile display settings.
type Preferences struct {
	Units         Units `json:"units"`
	Theme         Theme `json:"theme"`
	Notifications bool  `json:"notifications"`
}

// DefaultPreferences returns the settings every new profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Units:         UnitsMetric,
		Theme:         ThemeLight,
		Notifications: true,
	}
}

// UserProfile is a locally managed user identity. All workout data is stored
// under keys prefixed with the profile ID, so profiles never see each other's
// records.
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

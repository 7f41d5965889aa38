package domain

import "time"

// ExportVersion is written into every backup file so future format changes
// can be detected on import.
const ExportVersion = "1.0"

// ExportData is the full per-profile record set carried inside a backup.
type ExportData struct {
	Workouts    []WorkoutEntry  `json:"workouts"`
	Templates   []SavedTemplate `json:"templates"`
	Preferences map[string]any  `json:"preferences"`
}

// ExportUser is a snapshot of the exporting profile, kept purely for
// display when inspecting a backup file.
type ExportUser struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ExportFile is the envelope written to trackhq-backup-<date>.json.
type ExportFile struct {
	ExportDate time.Time   `json:"exportDate"`
	Version    string      `json:"version"`
	User       *ExportUser `json:"user"`
	Data       ExportData  `json:"data"`
}

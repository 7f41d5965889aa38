package domain

// Credential links a profile to a password hash. This is a convenience
// lock for a device-local profile switcher, not a real security boundary;
// the data it guards lives on the same storage.
type Credential struct {
	ProfileID    string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Package entities contains domain entities used across the application.
package entities

// User represents one learner account as the backend returns it.
// Password is write-only: it is sent on registration and login and is
// never stored as part of the cached record.
type User struct {
	ID              int64  `json:"id"`                  // backend-assigned identifier, immutable
	Name            string `json:"name"`                // display name
	Email           string `json:"email"`               // login key
	Password        string `json:"password,omitempty"`  // transient, never persisted
	Country         string `json:"country"`             // optional
	Avatar          string `json:"avatar"`              // avatar URL
	Level           string `json:"level"`               // level label, e.g. "Principiante"
	ProgressEnglish int    `json:"progressEnglish"`     // 0-100 in steps of 20
	ProgressFrench  int    `json:"progressFrench"`      // 0-100 in steps of 20
	ProgressRussian int    `json:"progressRussian"`     // 0-100 in steps of 20
	CreatedAt       string `json:"createdAt,omitempty"` // server-assigned
}

// Sanitized returns a copy of the user with the password removed.
// The preference store only ever sees sanitized records.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Progress returns the progress percentage for the given course language.
func (u *User) Progress(lang Language) int {
	switch lang {
	case LanguageEnglish:
		return u.ProgressEnglish
	case LanguageFrench:
		return u.ProgressFrench
	case LanguageRussian:
		return u.ProgressRussian
	}
	return 0
}

// SetProgress sets the progress percentage for the given course language,
// clamping the value to [0, 100].
func (u *User) SetProgress(lang Language, value int) {
	value = ClampProgress(value)
	switch lang {
	case LanguageEnglish:
		u.ProgressEnglish = value
	case LanguageFrench:
		u.ProgressFrench = value
	case LanguageRussian:
		u.ProgressRussian = value
	}
}

// ClampProgress clamps a progress percentage to [0, 100].
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Credentials are the fields sent to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData are the fields sent to the registration endpoint.
// ConfirmPassword is checked client-side only and never leaves the device.
type RegisterData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Country         string `json:"country,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	ConfirmPassword string `json:"-"`
}

// ProgressUpdate carries new progress percentages for a progress PATCH.
// A nil field means "leave unchanged" and is omitted from the request body.
type ProgressUpdate struct {
	English *int `json:"progressEnglish,omitempty"`
	French  *int `json:"progressFrench,omitempty"`
	Russian *int `json:"progressRussian,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProgressUpdate) IsEmpty() bool {
	return p.English == nil && p.French == nil && p.Russian == nil
}

// Clamp clamps every provided value to [0, 100] in place.
func (p ProgressUpdate) Clamp() {
	for _, v := range []*int{p.English, p.French, p.Russian} {
		if v != nil {
			*v = ClampProgress(*v)
		}
	}
}

package models

import "time"

const DefaultLanguage = "en"

// Preferences is a singleton: at most one record is meaningful at a time. It
// is created lazily with defaults on first read or write.
type Preferences struct {
	ID        string    `json:"id" db:"id"`
	Language  string    `json:"language" db:"language"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type UpdatePreferencesInput struct {
	Language *string `json:"language"`
}

func (in UpdatePreferencesInput) Fields() map[string]any {
	fields := map[string]any{}
	if in.Language != nil {
		fields["language"] = *in.Language
	}
	return fields
}

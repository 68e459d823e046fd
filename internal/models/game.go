package models

import "time"

type GameStatus string

const (
	StatusCompleted  GameStatus = "Completed"
	StatusInProgress GameStatus = "In Progress"
	StatusDropped    GameStatus = "Dropped"
	StatusNotStarted GameStatus = "Not Started"
)

type Game struct {
	ID             string     `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Platform       string     `json:"platform" db:"platform"`
	Genre          string     `json:"genre" db:"genre"`
	Status         GameStatus `json:"status" db:"status"`
	Rating         float64    `json:"rating" db:"rating"`
	Playtime       int        `json:"playtime" db:"playtime"`
	Developer      string     `json:"developer" db:"developer"`
	ReleaseDate    string     `json:"releaseDate" db:"release_date"`
	StartDate      *string    `json:"startDate" db:"start_date"`
	CompletionDate *string    `json:"completionDate" db:"completion_date"`
	Cover          string     `json:"cover" db:"cover"`
	Progress       int        `json:"progress" db:"progress"`
	Notes          *string    `json:"notes" db:"notes"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type CreateGameInput struct {
	Title          string     `json:"title"`
	Platform       string     `json:"platform"`
	Genre          string     `json:"genre"`
	Status         GameStatus `json:"status"`
	Rating         float64    `json:"rating"`
	Playtime       int        `json:"playtime"`
	Developer      string     `json:"developer"`
	ReleaseDate    string     `json:"releaseDate"`
	StartDate      *string    `json:"startDate"`
	CompletionDate *string    `json:"completionDate"`
	Cover          string     `json:"cover"`
	Progress       int        `json:"progress"`
	Notes          *string    `json:"notes"`
}

func (in CreateGameInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"title", in.Title},
		{"platform", in.Platform},
		{"genre", in.Genre},
		{"status", string(in.Status)},
		{"developer", in.Developer},
		{"releaseDate", in.ReleaseDate},
		{"cover", in.Cover},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

type UpdateGameInput struct {
	Title          *string     `json:"title"`
	Platform       *string     `json:"platform"`
	Genre          *string     `json:"genre"`
	Status         *GameStatus `json:"status"`
	Rating         *float64    `json:"rating"`
	Playtime       *int        `json:"playtime"`
	Developer      *string     `json:"developer"`
	ReleaseDate    *string     `json:"releaseDate"`
	StartDate      *string     `json:"startDate"`
	CompletionDate *string     `json:"completionDate"`
	Cover          *string     `json:"cover"`
	Progress       *int        `json:"progress"`
	Notes          *string     `json:"notes"`
}

// Fields returns the non-nil fields keyed by column name. A JSON null and an
// absent key both decode to nil and mean "leave unchanged"; clearing a field
// to null through an update is not supported.
func (in UpdateGameInput) Fields() map[string]any {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Platform != nil {
		fields["platform"] = *in.Platform
	}
	if in.Genre != nil {
		fields["genre"] = *in.Genre
	}
	if in.Status != nil {
		fields["status"] = string(*in.Status)
	}
	if in.Rating != nil {
		fields["rating"] = *in.Rating
	}
	if in.Playtime != nil {
		fields["playtime"] = *in.Playtime
	}
	if in.Developer != nil {
		fields["developer"] = *in.Developer
	}
	if in.ReleaseDate != nil {
		fields["release_date"] = *in.ReleaseDate
	}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.CompletionDate != nil {
		fields["completion_date"] = *in.CompletionDate
	}
	if in.Cover != nil {
		fields["cover"] = *in.Cover
	}
	if in.Progress != nil {
		fields["progress"] = *in.Progress
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	return fields
}

package models

import "time"

type BacklogCategory string

const (
	CategoryNextToPlay BacklogCategory = "Next to Play"
	CategoryMaybeLater BacklogCategory = "Maybe Later"
	CategoryWishlist   BacklogCategory = "Wishlist"
)

type BacklogPriority string

const (
	PriorityHigh   BacklogPriority = "High"
	PriorityMedium BacklogPriority = "Medium"
	PriorityLow    BacklogPriority = "Low"
)

type BacklogItem struct {
	ID                string          `json:"id" db:"id"`
	Title             string          `json:"title" db:"title"`
	Platform          string          `json:"platform" db:"platform"`
	Genre             string          `json:"genre" db:"genre"`
	Category          BacklogCategory `json:"category" db:"category"`
	Priority          BacklogPriority `json:"priority" db:"priority"`
	Developer         string          `json:"developer" db:"developer"`
	ReleaseDate       string          `json:"releaseDate" db:"release_date"`
	Cover             string          `json:"cover" db:"cover"`
	EstimatedPlaytime int             `json:"estimatedPlaytime" db:"estimated_playtime"`
	CurrentPrice      float64         `json:"currentPrice" db:"current_price"`
	WishlistPrice     float64         `json:"wishlistPrice" db:"wishlist_price"`
	Notes             *string         `json:"notes" db:"notes"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}

type CreateBacklogInput struct {
	Title             string          `json:"title"`
	Platform          string          `json:"platform"`
	Genre             string          `json:"genre"`
	Category          BacklogCategory `json:"category"`
	Priority          BacklogPriority `json:"priority"`
	Developer         string          `json:"developer"`
	ReleaseDate       string          `json:"releaseDate"`
	Cover             string          `json:"cover"`
	EstimatedPlaytime int             `json:"estimatedPlaytime"`
	CurrentPrice      float64         `json:"currentPrice"`
	WishlistPrice     float64         `json:"wishlistPrice"`
	Notes             *string         `json:"notes"`
}

func (in CreateBacklogInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"title", in.Title},
		{"platform", in.Platform},
		{"genre", in.Genre},
		{"category", string(in.Category)},
		{"priority", string(in.Priority)},
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

type UpdateBacklogInput struct {
	Title             *string          `json:"title"`
	Platform          *string          `json:"platform"`
	Genre             *string          `json:"genre"`
	Category          *BacklogCategory `json:"category"`
	Priority          *BacklogPriority `json:"priority"`
	Developer         *string          `json:"developer"`
	ReleaseDate       *string          `json:"releaseDate"`
	Cover             *string          `json:"cover"`
	EstimatedPlaytime *int             `json:"estimatedPlaytime"`
	CurrentPrice      *float64         `json:"currentPrice"`
	WishlistPrice     *float64         `json:"wishlistPrice"`
	Notes             *string          `json:"notes"`
}

func (in UpdateBacklogInput) Fields() map[string]any {
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
	if in.Category != nil {
		fields["category"] = string(*in.Category)
	}
	if in.Priority != nil {
		fields["priority"] = string(*in.Priority)
	}
	if in.Developer != nil {
		fields["developer"] = *in.Developer
	}
	if in.ReleaseDate != nil {
		fields["release_date"] = *in.ReleaseDate
	}
	if in.Cover != nil {
		fields["cover"] = *in.Cover
	}
	if in.EstimatedPlaytime != nil {
		fields["estimated_playtime"] = *in.EstimatedPlaytime
	}
	if in.CurrentPrice != nil {
		fields["current_price"] = *in.CurrentPrice
	}
	if in.WishlistPrice != nil {
		fields["wishlist_price"] = *in.WishlistPrice
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	return fields
}

// MoveToLibraryRequest carries the override fields applied when a backlog item
// becomes a library game. Absent fields keep these defaults; a nil Notes falls
// back to the source item's notes.
type MoveToLibraryRequest struct {
	Status         GameStatus `json:"status"`
	Rating         float64    `json:"rating"`
	Playtime       int        `json:"playtime"`
	Progress       int        `json:"progress"`
	StartDate      *string    `json:"startDate"`
	CompletionDate *string    `json:"completionDate"`
	Notes          *string    `json:"notes"`
}

func DefaultMoveToLibraryRequest() MoveToLibraryRequest {
	return MoveToLibraryRequest{
		Status:   StatusNotStarted,
		Rating:   0,
		Playtime: 0,
		Progress: 0,
	}
}

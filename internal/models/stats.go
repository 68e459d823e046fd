package models

// Stats is the dashboard aggregate over the full games and backlog
// collections.
type Stats struct {
	TotalGames    int     `json:"totalGames"`
	Completed     int     `json:"completed"`
	InProgress    int     `json:"inProgress"`
	TotalPlaytime int     `json:"totalPlaytime"`
	AvgRating     float64 `json:"avgRating"`
	BacklogCount  int     `json:"backlogCount"`
}

// LibraryStats is the games-side portion of Stats, computed in the store.
// AvgRating is already rounded to one decimal and 0 for an empty table.
type LibraryStats struct {
	TotalGames    int
	Completed     int
	InProgress    int
	TotalPlaytime int
	AvgRating     float64
}

package model

// ProjectStatus is the booking state of a single calendar day.
type ProjectStatus string

const (
	StatusBlocked  ProjectStatus = "blocked"
	StatusCanceled ProjectStatus = "canceled"
	// StatusFree is never persisted; an empty day is free.
	StatusFree ProjectStatus = "free"
)

// DefaultColor is applied by consumers when a project carries no color.
const DefaultColor = "#4ECDC4"

// Project represents a bookable engagement occupying one calendar day.
// A project spanning several days is stored as identical copies, one per day.
type Project struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Notes  string        `json:"notes,omitempty"`
	Color  string        `json:"color,omitempty"`
	Status ProjectStatus `json:"status"`
}

// IsBlocked returns true if the project holds its day
func (p Project) IsBlocked() bool {
	return p.Status == StatusBlocked
}

// DisplayColor returns the project's color, or DefaultColor when unset
func (p Project) DisplayColor() string {
	if p.Color == "" {
		return DefaultColor
	}
	return p.Color
}

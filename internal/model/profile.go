package model

// UserProfile is the singleton owner profile, replaced wholesale on save
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

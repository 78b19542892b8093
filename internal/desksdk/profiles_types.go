package desksdk

import (
	"time"
)

// Profile is a directory user profile
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Headline    string    `json:"headline,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Country     string    `json:"country,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileParams is the update payload for a profile
type ProfileParams struct {
	DisplayName string `json:"display_name,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ProfileList is one page of the member directory
type ProfileList struct {
	Items   []*Profile `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

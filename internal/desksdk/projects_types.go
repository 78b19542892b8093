package desksdk

import (
	"time"
)

// Project is a directory entry for a carbon-offset project
type Project struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Standard  string    `json:"standard"` // e.g. Verra VCS, Gold Standard
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectParams is the create/update payload for a project
type ProjectParams struct {
	CompanyID string `json:"company_id,omitempty"`
	Name      string `json:"name"`
	Summary   string `json:"summary,omitempty"`
	Standard  string `json:"standard,omitempty"`
	Country   string `json:"country,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ProjectList is one page of the project directory
type ProjectList struct {
	Items   []*Project `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

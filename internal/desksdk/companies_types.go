package desksdk

import (
	"time"
)

// Company is a directory entry for a company in the carbon economy
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Sector      string    `json:"sector"`
	Country     string    `json:"country"`
	CoverURL    string    `json:"cover_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyParams is the create/update payload for a company
type CompanyParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Country     string `json:"country,omitempty"`
}

// CompanyList is one page of the company directory
type CompanyList struct {
	Items   []*Company `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

package desksdk

import (
	"strconv"

	"github.com/imroc/req/v3"
)

// ListParams are the paging/search controls shared by every directory listing.
type ListParams struct {
	Page    int
	PerPage int
	Query   string
}

func (p *ListParams) apply(r *req.Request) *req.Request {
	if p == nil {
		return r
	}
	if p.Page > 0 {
		r.SetQueryParam("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		r.SetQueryParam("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Query != "" {
		r.SetQueryParam("q", p.Query)
	}
	return r
}

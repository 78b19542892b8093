package desksdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const (
	v1Companies   = "/api/v1/companies"
	companiesPath = "companies"
)

type CompaniesAPI struct {
	client *req.Client
	cache  *detailCache

	Media     *AttachmentAPI
	Documents *AttachmentAPI
}

func newCompaniesAPI(client *req.Client, cache *detailCache) *CompaniesAPI {
	return &CompaniesAPI{
		client:    client,
		cache:     cache,
		Media:     newAttachmentAPI(client, companiesPath, CollectionMedia, "cover"),
		Documents: newAttachmentAPI(client, companiesPath, CollectionDocuments, ""),
	}
}

// Create registers a new company and returns the created record
func (c *CompaniesAPI) Create(ctx context.Context, params *CompanyParams) (company *Company, err error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&company).
		SetRetryCount(0). // creation is not idempotent
		Post(v1Companies)

	if err := handleAPIError(resp, err, "company create"); err != nil {
		return nil, err
	}

	return company, nil
}

// Update patches an existing company's fields
func (c *CompaniesAPI) Update(ctx context.Context, id string, params *CompanyParams) (company *Company, err error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&company).
		Patch(v1Companies + "/" + id)

	if err := handleAPIError(resp, err, "company update"); err != nil {
		return nil, err
	}

	c.cache.drop(companiesPath, id)
	return company, nil
}

// Get fetches a company's public detail view. Cached; mutations invalidate.
func (c *CompaniesAPI) Get(ctx context.Context, id string) (*Company, error) {
	if cached, ok := c.cache.get(companiesPath, id); ok {
		return cached.(*Company), nil
	}

	var company *Company
	resp, err := c.client.R().
		SetContext(ctx).
		SetSuccessResult(&company).
		Get(v1Companies + "/" + id)

	if err := handleAPIError(resp, err, "company get"); err != nil {
		return nil, err
	}

	c.cache.put(companiesPath, id, company)
	return company, nil
}

// List returns one page of the company directory
func (c *CompaniesAPI) List(ctx context.Context, params *ListParams) (list *CompanyList, err error) {
	resp, err := params.apply(c.client.R().SetContext(ctx)).
		SetSuccessResult(&list).
		Get(v1Companies)

	if err := handleAPIError(resp, err, "company list"); err != nil {
		return nil, err
	}

	return list, nil
}

// Delete removes a company
func (c *CompaniesAPI) Delete(ctx context.Context, id string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(v1Companies + "/" + id)

	if err := handleAPIError(resp, err, "company delete"); err != nil {
		return err
	}

	c.cache.drop(companiesPath, id)
	return nil
}

package desksdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const (
	v1Projects   = "/api/v1/projects"
	projectsPath = "projects"
)

type ProjectsAPI struct {
	client *req.Client
	cache  *detailCache

	Media     *AttachmentAPI
	Documents *AttachmentAPI
}

func newProjectsAPI(client *req.Client, cache *detailCache) *ProjectsAPI {
	return &ProjectsAPI{
		client:    client,
		cache:     cache,
		Media:     newAttachmentAPI(client, projectsPath, CollectionMedia, "cover"),
		Documents: newAttachmentAPI(client, projectsPath, CollectionDocuments, ""),
	}
}

// Create registers a new project and returns the created record
func (p *ProjectsAPI) Create(ctx context.Context, params *ProjectParams) (project *Project, err error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&project).
		SetRetryCount(0). // creation is not idempotent
		Post(v1Projects)

	if err := handleAPIError(resp, err, "project create"); err != nil {
		return nil, err
	}

	return project, nil
}

// Update patches an existing project's fields
func (p *ProjectsAPI) Update(ctx context.Context, id string, params *ProjectParams) (project *Project, err error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&project).
		Patch(v1Projects + "/" + id)

	if err := handleAPIError(resp, err, "project update"); err != nil {
		return nil, err
	}

	p.cache.drop(projectsPath, id)
	return project, nil
}

// Get fetches a project's public detail view. Cached; mutations invalidate.
func (p *ProjectsAPI) Get(ctx context.Context, id string) (*Project, error) {
	if cached, ok := p.cache.get(projectsPath, id); ok {
		return cached.(*Project), nil
	}

	var project *Project
	resp, err := p.client.R().
		SetContext(ctx).
		SetSuccessResult(&project).
		Get(v1Projects + "/" + id)

	if err := handleAPIError(resp, err, "project get"); err != nil {
		return nil, err
	}

	p.cache.put(projectsPath, id, project)
	return project, nil
}

// List returns one page of the project directory
func (p *ProjectsAPI) List(ctx context.Context, params *ListParams) (list *ProjectList, err error) {
	resp, err := params.apply(p.client.R().SetContext(ctx)).
		SetSuccessResult(&list).
		Get(v1Projects)

	if err := handleAPIError(resp, err, "project list"); err != nil {
		return nil, err
	}

	return list, nil
}

// Delete removes a project
func (p *ProjectsAPI) Delete(ctx context.Context, id string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Delete(v1Projects + "/" + id)

	if err := handleAPIError(resp, err, "project delete"); err != nil {
		return err
	}

	p.cache.drop(projectsPath, id)
	return nil
}

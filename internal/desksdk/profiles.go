package desksdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const (
	v1Profiles   = "/api/v1/profiles"
	profilesPath = "profiles"
)

type ProfilesAPI struct {
	client *req.Client
	cache  *detailCache

	// Media holds profile images; its designation endpoint is the avatar.
	Media     *AttachmentAPI
	Documents *AttachmentAPI
}

func newProfilesAPI(client *req.Client, cache *detailCache) *ProfilesAPI {
	return &ProfilesAPI{
		client:    client,
		cache:     cache,
		Media:     newAttachmentAPI(client, profilesPath, CollectionMedia, "avatar"),
		Documents: newAttachmentAPI(client, profilesPath, CollectionDocuments, ""),
	}
}

// Me fetches the authenticated user's own profile
func (p *ProfilesAPI) Me(ctx context.Context) (profile *Profile, err error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetSuccessResult(&profile).
		Get(v1Profiles + "/me")

	if err := handleAPIError(resp, err, "profile me"); err != nil {
		return nil, err
	}

	return profile, nil
}

// Update patches a profile's fields
func (p *ProfilesAPI) Update(ctx context.Context, id string, params *ProfileParams) (profile *Profile, err error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&profile).
		Patch(v1Profiles + "/" + id)

	if err := handleAPIError(resp, err, "profile update"); err != nil {
		return nil, err
	}

	p.cache.drop(profilesPath, id)
	return profile, nil
}

// Get fetches a profile's public detail view. Cached; mutations invalidate.
func (p *ProfilesAPI) Get(ctx context.Context, id string) (*Profile, error) {
	if cached, ok := p.cache.get(profilesPath, id); ok {
		return cached.(*Profile), nil
	}

	var profile *Profile
	resp, err := p.client.R().
		SetContext(ctx).
		SetSuccessResult(&profile).
		Get(v1Profiles + "/" + id)

	if err := handleAPIError(resp, err, "profile get"); err != nil {
		return nil, err
	}

	p.cache.put(profilesPath, id, profile)
	return profile, nil
}

// List returns one page of the member directory
func (p *ProfilesAPI) List(ctx context.Context, params *ListParams) (list *ProfileList, err error) {
	resp, err := params.apply(p.client.R().SetContext(ctx)).
		SetSuccessResult(&list).
		Get(v1Profiles)

	if err := handleAPIError(resp, err, "profile list"); err != nil {
		return nil, err
	}

	return list, nil
}

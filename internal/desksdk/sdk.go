package desksdk

import (
	"net/http"
	"time"

	"github.com/imroc/req/v3"
	"github.com/opencarbon/carbondesk/internal/version"
)

// DeskSDK is the main client for interacting with the carbon directory API
type DeskSDK struct {
	client    *req.Client
	auth      *AuthContext
	Companies *CompaniesAPI
	Projects  *ProjectsAPI
	Profiles  *ProfilesAPI
}

// New creates a new DeskSDK client. The auth context may carry an empty token
// for public (unauthenticated) reads.
func New(cfg *Config, auth *AuthContext) (*DeskSDK, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if auth == nil {
		auth = NewAuthContext("", nil)
	}

	client := req.C().
		SetBaseURL(cfg.BaseURL).
		SetUserAgent("CarbonDesk/"+version.Version).
		SetCommonRetryCount(2).
		SetCommonRetryBackoffInterval(1*time.Second, 5*time.Second).
		SetCommonErrorResult(&APIError{}).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	client.OnBeforeRequest(func(c *req.Client, r *req.Request) error {
		if token := auth.Token(); token != "" {
			r.SetBearerAuthToken(token)
		}
		return nil
	})

	client.OnAfterResponse(func(c *req.Client, resp *req.Response) error {
		if resp.Response != nil && resp.StatusCode == http.StatusUnauthorized {
			auth.Expire()
		}
		return nil
	})

	cache := newDetailCache()

	return &DeskSDK{
		client:    client,
		auth:      auth,
		Companies: newCompaniesAPI(client, cache),
		Projects:  newProjectsAPI(client, cache),
		Profiles:  newProfilesAPI(client, cache),
	}, nil
}

// Auth returns the SDK's auth context.
func (s *DeskSDK) Auth() *AuthContext {
	return s.auth
}

// Close terminates all connections and cleans up resources
func (s *DeskSDK) Close() {
	s.client.GetTransport().CloseIdleConnections()
}

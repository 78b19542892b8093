package desksdk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyCreate(t *testing.T) {
	var (
		gotPath string
		gotBody CompanyParams
	)
	sdk := newTestSDK(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c-1","name":"Verdant Ltd","slug":"verdant-ltd"}`))
	})

	company, err := sdk.Companies.Create(context.Background(), &CompanyParams{
		Name:    "Verdant Ltd",
		Sector:  "forestry",
		Country: "BR",
	})
	require.NoError(t, err)

	assert.Equal(t, "POST /api/v1/companies", gotPath)
	assert.Equal(t, "Verdant Ltd", gotBody.Name)
	assert.Equal(t, "c-1", company.ID)
	assert.Equal(t, "verdant-ltd", company.Slug)
}

func TestCompanyGetIsCached(t *testing.T) {
	hits := 0
	sdk := newTestSDK(t, "", func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c-1","name":"Verdant Ltd"}`))
	})

	first, err := sdk.Companies.Get(context.Background(), "c-1")
	require.NoError(t, err)
	second, err := sdk.Companies.Get(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "the second read is served from cache")
	assert.Equal(t, first, second)
}

func TestCompanyUpdateInvalidatesCache(t *testing.T) {
	hits := 0
	sdk := newTestSDK(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			hits++
			w.Write([]byte(`{"id":"c-1","name":"Verdant Ltd"}`))
			return
		}
		w.Write([]byte(`{"id":"c-1","name":"Verdant Renamed"}`))
	})

	_, err := sdk.Companies.Get(context.Background(), "c-1")
	require.NoError(t, err)

	_, err = sdk.Companies.Update(context.Background(), "c-1", &CompanyParams{Name: "Verdant Renamed"})
	require.NoError(t, err)

	_, err = sdk.Companies.Get(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, 2, hits, "the update drops the cached detail")
}

func TestCompanyListParams(t *testing.T) {
	var gotQuery string
	sdk := newTestSDK(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"c-1","name":"Verdant Ltd"}],"total":1,"page":2,"per_page":5}`))
	})

	list, err := sdk.Companies.List(context.Background(), &ListParams{Page: 2, PerPage: 5, Query: "forest"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "per_page=5")
	assert.Contains(t, gotQuery, "q=forest")
	require.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.Page)
}

func TestCompanyDelete(t *testing.T) {
	var gotPath string
	sdk := newTestSDK(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, sdk.Companies.Delete(context.Background(), "c-1"))
	assert.Equal(t, "DELETE /api/v1/companies/c-1", gotPath)
}

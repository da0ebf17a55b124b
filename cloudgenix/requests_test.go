package cloudgenix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiForServer points a fresh API at a test server.
func apiForServer(t *testing.T, srv *httptest.Server) *API {
	t.Helper()

	api, err := NewAPI("test-token-12345")
	require.NoError(t, err)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	api.BaseURI = u
	api.Client = srv.Client()

	return api
}

func TestNewAPIRequiresToken(t *testing.T) {
	_, err := NewAPI("")
	require.Error(t, err)
}

func TestRequestSendsAuthTokenHeader(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		w.Write([]byte(`{"region":"hood"}`))
	}))
	defer srv.Close()

	api := apiForServer(t, srv)
	profile, err := api.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-token-12345", gotToken)
	assert.Equal(t, "hood", profile.Region)
}

func TestListSitesDecodesItemsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4.5/api/sites", r.URL.Path)
		w.Write([]byte(`{
			"count": 2,
			"items": [
				{"id": "15600", "name": "Chicago Branch"},
				{"id": "15601", "name": "Seattle DC"}
			]
		}`))
	}))
	defer srv.Close()

	api := apiForServer(t, srv)
	sites, err := api.ListSites(context.Background())
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, "Chicago Branch", sites[0].Name)
	assert.Equal(t, "15601", sites[1].ID)
}

func TestListInterfacesSortsByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4.6/api/sites/15600/elements/99001/interfaces", r.URL.Path)
		w.Write([]byte(`{
			"count": 3,
			"items": [
				{"id": "3", "name": "controller 1"},
				{"id": "1", "name": "13"},
				{"id": "2", "name": "1"}
			]
		}`))
	}))
	defer srv.Close()

	api := apiForServer(t, srv)
	interfaces, err := api.ListInterfaces(context.Background(), "15600", "99001")
	require.NoError(t, err)

	require.Len(t, interfaces, 3)
	// lexicographic by name, like the portal's own listing
	assert.Equal(t, "1", interfaces[0].Name)
	assert.Equal(t, "13", interfaces[1].Name)
	assert.Equal(t, "controller 1", interfaces[2].Name)
}

func TestListInterfacesRequiresIDs(t *testing.T) {
	api, err := NewAPI("token")
	require.NoError(t, err)

	_, err = api.ListInterfaces(context.Background(), "", "99001")
	require.Error(t, err)
}

func TestRequestAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api := apiForServer(t, srv)
	_, err := api.ListElements(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

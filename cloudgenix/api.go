package cloudgenix

import (
	"fmt"
	"net/http"
	"net/url"
)

// DefaultController is where every tenant's API session starts out; the per-tenant
// region only becomes known after querying the login profile.
const DefaultController = "https://api.elcapitan.cloudgenix.com"

func NewAPI(token string) (*API, error) {
	if token == "" {
		return &API{}, fmt.Errorf("cloudgenix: auth token is empty, set AUTH_TOKEN or check auth-token-cmd")
	}

	u, err := url.ParseRequestURI(DefaultController)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't parse REST API URL: %w", err)
	}

	a := &API{
		BaseURI: u,
		token:   token,
	}
	a.Client = &http.Client{}

	return a, nil
}

type API struct {
	// Base URI of the CloudGenix controller.
	BaseURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// Auth info
	token string
}

package cloudgenix

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// getProfileEndpoint returns the endpoint for the current operator's login
// profile, which carries the controller region for the tenant.
func (a *API) getProfileEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/v2.1/api/profile")
}

// getSitesEndpoint returns the endpoint to list every site in the tenant.
func (a *API) getSitesEndpoint(opts ListQuery) (*url.URL, error) {
	ep, err := a.resolveEndpoint("/v4.5/api/sites")
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// getElementsEndpoint returns the endpoint to list every element in the
// tenant, regardless of site assignment.
func (a *API) getElementsEndpoint(opts ListQuery) (*url.URL, error) {
	ep, err := a.resolveEndpoint("/v2.3/api/elements")
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// getInterfacesEndpoint returns the endpoint to list the interfaces of one
// element at one site.
func (a *API) getInterfacesEndpoint(siteID, elementID string, opts ListQuery) (*url.URL, error) {
	if siteID == "" || elementID == "" {
		return nil, fmt.Errorf("cloudgenix: please provide site and element IDs to list interfaces")
	}

	ep, err := a.resolveEndpoint(fmt.Sprintf("/v4.6/api/sites/%s/elements/%s/interfaces", siteID, elementID))
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// Do a bit of error checking on endpoint format, and return it relative to the base URI.
func (a *API) resolveEndpoint(endpoint string) (*url.URL, error) {
	baseUri := a.BaseURI

	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: failed to parse endpoint ref: %w", err)
	}

	return baseUri.ResolveReference(ref), nil
}

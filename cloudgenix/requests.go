package cloudgenix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GetProfile returns the operator profile behind the auth token.
func (api *API) GetProfile(ctx context.Context) (*Profile, error) {
	ep, err := api.getProfileEndpoint()
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't get profile endpoint: %w", err)
	}

	body, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't perform request: %w", err)
	}

	var profile Profile

	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't parse json response: %w", err)
	}

	return &profile, nil
}

func (api *API) getSites(ctx context.Context, opts ListQuery) ([]Site, error) {
	ep, err := api.getSitesEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't get sites endpoint: %w", err)
	}

	body, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't perform request: %w", err)
	}

	var siteList siteListResponse

	if err := json.Unmarshal(body, &siteList); err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't parse json response: %w", err)
	}

	return siteList.Items, nil
}

func (api *API) getElements(ctx context.Context, opts ListQuery) ([]Element, error) {
	ep, err := api.getElementsEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't get elements endpoint: %w", err)
	}

	body, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't perform request: %w", err)
	}

	var elementList elementListResponse

	if err := json.Unmarshal(body, &elementList); err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't parse json response: %w", err)
	}

	return elementList.Items, nil
}

func (api *API) getInterfaces(ctx context.Context, siteID, elementID string, opts ListQuery) ([]Interface, error) {
	ep, err := api.getInterfacesEndpoint(siteID, elementID, opts)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't get interfaces endpoint: %w", err)
	}

	body, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't perform request: %w", err)
	}

	var interfaceList interfaceListResponse

	if err := json.Unmarshal(body, &interfaceList); err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't parse json response: %w", err)
	}

	return interfaceList.Items, nil
}

// Request implements the basic Request function
func (api *API) request(ctx context.Context, url *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't instantiate http request: %w", err)
	}

	req.Header.Add("Accept", "application/json, */*")

	// The controller wants the static token on every request.
	if api.token != "" {
		req.Header.Set("X-Auth-Token", api.token)
	}

	response, err := api.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't perform http request: %w", err)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't read response body: %w", err)
	}

	if err := response.Body.Close(); err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't close response body: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusPartialContent, http.StatusNoContent:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("cloudgenix: authentication failed, is AUTH_TOKEN still valid?")
	case http.StatusServiceUnavailable:
		return nil, fmt.Errorf("cloudgenix: service is not available: %s", response.Status)
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("cloudgenix: internal server error: %s", response.Status)
	}

	return nil, fmt.Errorf("cloudgenix: unknown HTTP response status: %s: %s", response.Status, url.String())
}

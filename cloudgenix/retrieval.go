package cloudgenix

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// ListSites returns every site in the tenant.
func (api API) ListSites(ctx context.Context) ([]Site, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	sites, err := api.getSites(ctx, ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't list sites: %w", err)
	}

	return sites, nil
}

// ListElements returns every element in the tenant, claimed or not.
func (api API) ListElements(ctx context.Context) ([]Element, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	elements, err := api.getElements(ctx, ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't list elements: %w", err)
	}

	return elements, nil
}

// ListInterfaces returns the interfaces of one element, sorted by interface
// name so downstream output is stable.
func (api API) ListInterfaces(ctx context.Context, siteID, elementID string) ([]Interface, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	interfaces, err := api.getInterfaces(ctx, siteID, elementID, ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("cloudgenix: couldn't list interfaces of element %s: %w", elementID, err)
	}

	slices.SortFunc(interfaces, func(a, b Interface) int {
		return strings.Compare(a.Name, b.Name)
	})

	return interfaces, nil
}

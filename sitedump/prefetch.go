package sitedump

import (
	"context"
	"fmt"

	"github.com/toothbrush/portal-dump/cloudgenix"
	"golang.org/x/sync/errgroup"
)

// Prefetch resolves the two name → ID tables the capture loop needs.  The
// two collection fetches are independent, so they go out concurrently; the
// browser itself stays strictly one-page-at-a-time.
func (s *Screenshotter) Prefetch(ctx context.Context) error {
	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		sites, err := s.API.ListSites(gctx)
		if err != nil {
			return fmt.Errorf("sitedump: couldn't list sites: %w", err)
		}
		s.sitesN2ID = cloudgenix.SiteLookup(sites)
		return nil
	})

	grp.Go(func() error {
		elements, err := s.API.ListElements(gctx)
		if err != nil {
			return fmt.Errorf("sitedump: couldn't list elements: %w", err)
		}
		s.elementsN2ID = cloudgenix.ElementLookup(elements)
		return nil
	})

	if err := grp.Wait(); err != nil {
		return err
	}

	s.logf("Resolved %d sites and %d elements from the controller.\n",
		len(s.sitesN2ID), len(s.elementsN2ID))

	return nil
}

// Lookups exposes the resolved name → ID tables, mostly for the `list`
// commands.  Call Prefetch first.
func (s *Screenshotter) Lookups() (sites map[string]string, elements map[string]string) {
	return s.sitesN2ID, s.elementsN2ID
}

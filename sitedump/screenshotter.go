package sitedump

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/fatih/color"
	"github.com/toothbrush/portal-dump/browser"
	"github.com/toothbrush/portal-dump/cloudgenix"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// screenshotsDir is the fixed subdirectory of the store everything lands in.
const screenshotsDir = "screenshots"

const (
	viewportWidth  = 1920
	viewportHeight = 1080

	// Long tables (interface lists) need more vertical room.
	tallViewportHeight = 2160

	// The map tiles keep trickling in well after the pane exists.
	topologySettleDelay = 8 * time.Second
)

// PortalAPI is the slice of the CloudGenix API the capture pipeline consumes.
type PortalAPI interface {
	ListSites(ctx context.Context) ([]cloudgenix.Site, error)
	ListElements(ctx context.Context) ([]cloudgenix.Element, error)
	ListInterfaces(ctx context.Context, siteID, elementID string) ([]cloudgenix.Interface, error)
}

var _ PortalAPI = &cloudgenix.API{}

// Screenshotter drives one browser page through the portal and collects the
// records the Markdown pass needs.  Configure the exported fields before
// calling CaptureAll.
type Screenshotter struct {
	// StorePath is the directory the screenshots/ tree is created under.
	StorePath string

	// Region selects the portal host, portal.<region>.cloudgenix.com.
	Region string

	API  PortalAPI
	Page browser.Pager

	// Build annotates generated Markdown; zero value means no annotations.
	Build BuildInfo

	Logger *log.Logger

	// ExtractText additionally saves a Markdown text extract of every
	// captured page next to its PNG.
	ExtractText bool

	// SkipTopology leaves out the tenant-wide map page.
	SkipTopology bool

	// ShowProgress renders a progress bar over the planned captures.
	ShowProgress bool

	// Settle overrides every per-page settle delay when nonzero.  Tests use
	// this; production leaves it zero and gets the tuned defaults.
	Settle time.Duration

	// populated by Prefetch
	sitesN2ID    map[string]string
	elementsN2ID map[string]string

	progress *mpb.Progress
	bar      *mpb.Bar
	total    int64
}

// CaptureAll walks the plan site by site, element by element, interface by
// interface, screenshotting the fixed page catalog for each.  Unknown names
// and page-level failures are warned about and skipped; the returned records
// describe what was actually captured.
func (s *Screenshotter) CaptureAll(ctx context.Context, plan Plan) ([]SiteRecord, error) {
	if s.sitesN2ID == nil || s.elementsN2ID == nil {
		if err := s.Prefetch(ctx); err != nil {
			return nil, fmt.Errorf("sitedump: lookup prefetch failed: %w", err)
		}
	}

	if err := s.ensureStoreDir(screenshotsDir); err != nil {
		return nil, err
	}

	s.startProgress(plan)
	defer s.finishProgress()

	if !s.SkipTopology {
		// The first page load also exercises the login flow, and the
		// "what's new" modal may be in the way.
		s.capturePage("topology map", browser.CaptureRequest{
			URL:         topologyURL(s.Region),
			Wait:        browser.WaitForClass("leaflet-map-pane"),
			Clicks:      []string{xpathCloseWhatsNew},
			SettleDelay: s.settleOr(topologySettleDelay),
			OutputPath:  s.storeFile(screenshotsDir, "map.png"),
		})
	}

	records := []SiteRecord{}

	for _, sitePlan := range plan {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		record, err := s.captureSite(ctx, sitePlan)
		if err != nil {
			return records, err
		}
		if record != nil {
			records = append(records, *record)
		}
	}

	return records, nil
}

// captureSite handles one site.  A nil record with nil error means the site
// was skipped (unknown name); in that case no directory is created for it.
func (s *Screenshotter) captureSite(ctx context.Context, sitePlan SitePlan) (*SiteRecord, error) {
	siteID, ok := s.sitesN2ID[sitePlan.Name]
	if !ok {
		s.warnf("WARNING: Could not get Site ID for Site %s, skipping..", sitePlan.Name)
		s.skipUnits(1 + int64(len(sitePlan.Elements))*int64(len(elementPages)))
		return nil, nil
	}

	siteFS := SanitizeFilename(sitePlan.Name)
	siteDir := path.Join(screenshotsDir, siteFS)
	if err := s.ensureStoreDir(siteDir); err != nil {
		return nil, err
	}

	record := &SiteRecord{
		Name:     sitePlan.Name,
		FSName:   siteFS,
		Elements: []ElementRecord{},
	}

	s.capturePage(fmt.Sprintf("site map card of '%s'", sitePlan.Name), browser.CaptureRequest{
		URL:         siteURL(s.Region, siteID),
		Wait:        browser.WaitForClass("site-info"),
		SettleDelay: s.Settle,
		OutputPath:  s.storeFile(siteDir, "site-info.png"),
	})

	for _, elementName := range sitePlan.Elements {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		elementRecord, err := s.captureElement(ctx, siteID, siteDir, elementName)
		if err != nil {
			return record, err
		}
		if elementRecord != nil {
			record.Elements = append(record.Elements, *elementRecord)
		}
	}

	return record, nil
}

func (s *Screenshotter) captureElement(ctx context.Context, siteID, siteDir, elementName string) (*ElementRecord, error) {
	elementID, ok := s.elementsN2ID[elementName]
	if !ok {
		s.warnf("WARNING: Could not get Element ID for Element %s, skipping..", elementName)
		s.skipUnits(int64(len(elementPages)))
		return nil, nil
	}

	elementFS := SanitizeFilename(elementName)
	elementDir := path.Join(siteDir, elementFS)
	if err := s.ensureStoreDir(elementDir); err != nil {
		return nil, err
	}

	record := &ElementRecord{
		Name:       elementName,
		FSName:     elementFS,
		Interfaces: []InterfaceRecord{},
	}

	for _, pg := range elementPages {
		if pg.TallWindow {
			_ = s.Page.SetViewportSize(viewportWidth, tallViewportHeight)
		}

		s.capturePage(fmt.Sprintf("%s of element '%s'", pg.Title, elementName), browser.CaptureRequest{
			URL:         elementURL(s.Region, elementID, pg.URLPath),
			Wait:        browser.WaitForClass(pg.WaitClass),
			WaitTimeout: pg.WaitTimeout,
			SettleDelay: s.Settle,
			OutputPath:  s.storeFile(elementDir, pg.Filename),
		})

		if pg.TallWindow {
			_ = s.Page.SetViewportSize(viewportWidth, viewportHeight)
		}
	}

	interfaces, err := s.API.ListInterfaces(ctx, siteID, elementID)
	if err != nil {
		s.warnf("WARNING: Could not list interfaces of Element %s: %v, skipping them..", elementName, err)
		return record, nil
	}

	if len(interfaces) == 0 {
		// no interfaces directory, no interfaces README
		return record, nil
	}

	interfaceDir := path.Join(elementDir, "interfaces")
	if err := s.ensureStoreDir(interfaceDir); err != nil {
		return nil, err
	}

	s.addUnits(int64(len(interfaces)))

	_ = s.Page.SetViewportSize(viewportWidth, tallViewportHeight)
	defer s.Page.SetViewportSize(viewportWidth, viewportHeight)

	for _, iface := range interfaces {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		ifaceFS := SanitizeFilename(iface.Name)
		record.Interfaces = append(record.Interfaces, InterfaceRecord{
			Name:   iface.Name,
			FSName: ifaceFS,
		})

		s.capturePage(fmt.Sprintf("interface '%s' of element '%s'", iface.Name, elementName), browser.CaptureRequest{
			URL:  interfaceURL(s.Region, elementID, iface.ID),
			Wait: browser.WaitForClass("collapsible-form__toggle"),
			Clicks: []string{
				xpathInterfaceExpand1,
				xpathInterfaceExpand2,
			},
			SettleDelay: s.Settle,
			OutputPath:  s.storeFile(interfaceDir, ifaceFS+".png"),
		})
	}

	return record, nil
}

// capturePage performs one capture and turns every non-fatal hiccup into a
// warning.  A capture that cannot even navigate or screenshot is warned
// about and skipped; the loop keeps going.
func (s *Screenshotter) capturePage(what string, req browser.CaptureRequest) {
	if s.bar != nil {
		defer s.bar.Increment()
	}

	result, err := browser.Capture(s.Page, req)
	if err != nil {
		s.warnf("WARNING: Couldn't capture %s: %v, skipping..", what, err)
		return
	}

	if result.TimedOut {
		s.warnf("WARNING: Loading %s, waiting for marker '%s' took too long.  Saving data that exists.",
			what, req.Wait.Marker)
	}
	if result.ClicksRequested > 0 {
		s.logf("Click (%d of %d succeeded) on %s\n", result.ClicksSucceeded, result.ClicksRequested, what)
	}
	s.logf("Captured %s (elapsed %.2fs): %s\n", what, result.Elapsed.Seconds(), req.OutputPath)

	if s.ExtractText {
		if err := s.extractPageText(s.Page, req.OutputPath); err != nil {
			s.warnf("WARNING: Couldn't extract text of %s: %v", what, err)
		}
	}
}

func (s *Screenshotter) settleOr(fallback time.Duration) time.Duration {
	if s.Settle != 0 {
		return s.Settle
	}
	return fallback
}

func (s *Screenshotter) storeFile(parts ...string) string {
	return path.Join(append([]string{s.StorePath}, parts...)...)
}

func (s *Screenshotter) ensureStoreDir(relative string) error {
	dir := path.Join(s.StorePath, relative)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("sitedump: couldn't create directory %s: %w", dir, err)
	}
	return nil
}

func (s *Screenshotter) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

func (s *Screenshotter) warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

// progress bar plumbing.  The interface count is only known once each
// element is visited, so the bar total grows while we go.

func (s *Screenshotter) startProgress(plan Plan) {
	s.total = 0
	if !s.SkipTopology {
		s.total++
	}
	for _, sitePlan := range plan {
		s.total += 1 + int64(len(sitePlan.Elements))*int64(len(elementPages))
	}

	if !s.ShowProgress {
		return
	}

	s.progress = mpb.New(mpb.WithWidth(64))
	s.bar = s.progress.AddBar(s.total,
		mpb.PrependDecorators(
			decor.Name("captures:", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d) "),
			decor.NewPercentage("%d"),
			decor.Spinner([]string{" /", " -", " \\", " |"}),
		),
	)
}

func (s *Screenshotter) addUnits(n int64) {
	s.total += n
	if s.bar != nil {
		s.bar.SetTotal(s.total, false)
	}
}

func (s *Screenshotter) skipUnits(n int64) {
	s.total -= n
	if s.bar != nil {
		s.bar.SetTotal(s.total, false)
	}
}

func (s *Screenshotter) finishProgress() {
	if s.bar != nil {
		s.bar.SetTotal(-1, true)
		s.progress.Wait()
		s.bar = nil
		s.progress = nil
	}
}

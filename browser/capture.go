package browser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	// DefaultWaitTimeout bounds how long we wait for a DOM marker before
	// giving up and screenshotting whatever state the page is in.
	DefaultWaitTimeout = 15 * time.Second

	// DefaultSettleDelay is a short pause between the page being "ready" and
	// the screenshot, to let late renders (charts, tiles) finish.
	DefaultSettleDelay = 1 * time.Second

	// clickTimeout keeps best-effort clicks from inheriting the page's long
	// default timeout; a click target is either there now or we move on.
	clickTimeout = 500 * time.Millisecond
)

// Pager is the slice of playwright.Page the capture routine needs.  Narrow on
// purpose, so captures are testable without a browser.
type Pager interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error)
	Click(selector string, options ...playwright.PageClickOptions) error
	Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error)
	SetViewportSize(width, height int) error
	Content() (string, error)
}

var _ Pager = (playwright.Page)(nil)

// WaitKind selects the rule used to decide when a loaded page is ready enough
// to screenshot.
type WaitKind int

const (
	WaitNone WaitKind = iota
	WaitTime
	WaitClass
	WaitID
)

// WaitStrategy is a WaitKind plus its parameter: a DOM marker for
// WaitClass/WaitID, a fixed duration for WaitTime.
type WaitStrategy struct {
	Kind   WaitKind
	Marker string
	Delay  time.Duration
}

// WaitForClass waits until an element carrying the CSS class appears.
func WaitForClass(marker string) WaitStrategy {
	return WaitStrategy{Kind: WaitClass, Marker: marker}
}

// WaitForID waits until the element with the DOM id appears.
func WaitForID(marker string) WaitStrategy {
	return WaitStrategy{Kind: WaitID, Marker: marker}
}

// WaitSeconds waits a fixed number of seconds, no questions asked.
func WaitSeconds(seconds int) WaitStrategy {
	return WaitStrategy{Kind: WaitTime, Delay: time.Duration(seconds) * time.Second}
}

// ParseWaitStrategy interprets the stringly-typed (waitfor, value) pair as
// found in config files: "class"/"id" with a marker name, or "time" with a
// value castable to whole seconds.  Anything else means don't wait at all; a
// non-integer "time" value likewise degrades to no wait.
func ParseWaitStrategy(waitfor, value string) WaitStrategy {
	switch waitfor {
	case "class":
		return WaitForClass(value)
	case "id":
		return WaitForID(value)
	case "time":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds < 0 {
			return WaitStrategy{Kind: WaitNone}
		}
		return WaitSeconds(seconds)
	}
	return WaitStrategy{Kind: WaitNone}
}

// CaptureRequest describes one page-load-and-screenshot round trip.
type CaptureRequest struct {
	URL  string
	Wait WaitStrategy

	// WaitTimeout bounds marker waits; zero means DefaultWaitTimeout.
	WaitTimeout time.Duration

	// Clicks are selectors to click, in order, once the page is ready.  Each
	// is a single best-effort attempt; a missing target is not an error.
	Clicks []string

	// SettleDelay is applied after clicks, before the screenshot; zero means
	// DefaultSettleDelay.
	SettleDelay time.Duration

	// OutputPath is where the PNG lands.
	OutputPath string
}

// CaptureResult reports what actually happened during a capture, so callers
// can warn about degraded screenshots instead of us swallowing the details.
type CaptureResult struct {
	TimedOut        bool
	ClicksRequested int
	ClicksSucceeded int
	Elapsed         time.Duration
}

// Capture loads the URL, applies the wait strategy, performs the requested
// best-effort clicks, lets the page settle and writes a screenshot to
// req.OutputPath.  A marker-wait timeout is reported via the result, not an
// error; only navigation and screenshot failures are errors.
func Capture(page Pager, req CaptureRequest) (CaptureResult, error) {
	start := time.Now()
	result := CaptureResult{}

	if _, err := page.Goto(req.URL); err != nil {
		return result, fmt.Errorf("browser: navigation to %s failed: %w", req.URL, err)
	}

	waitTimeout := req.WaitTimeout
	if waitTimeout == 0 {
		waitTimeout = DefaultWaitTimeout
	}

	switch req.Wait.Kind {
	case WaitClass, WaitID:
		selector := "." + req.Wait.Marker
		if req.Wait.Kind == WaitID {
			selector = "#" + req.Wait.Marker
		}

		state := playwright.WaitForSelectorStateAttached
		_, err := page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
			State:   state,
			Timeout: playwright.Float(float64(waitTimeout.Milliseconds())),
		})
		if err != nil {
			// Save whatever state the page is in; the caller decides whether
			// a degraded screenshot is worth warning about.
			result.TimedOut = true
		}

	case WaitTime:
		if req.Wait.Delay > 0 {
			time.Sleep(req.Wait.Delay)
		}
	}

	for _, selector := range req.Clicks {
		if selector == "" {
			continue
		}
		result.ClicksRequested++

		err := page.Click(selector, playwright.PageClickOptions{
			Timeout: playwright.Float(float64(clickTimeout.Milliseconds())),
		})
		if err != nil {
			// got a miss on the DOM select/click.  Continue without the click.
			continue
		}
		result.ClicksSucceeded++
	}

	settle := req.SettleDelay
	if settle == 0 {
		settle = DefaultSettleDelay
	}
	time.Sleep(settle)

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(req.OutputPath),
	}); err != nil {
		return result, fmt.Errorf("browser: screenshot of %s failed: %w", req.URL, err)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

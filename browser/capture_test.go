package browser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPage is the minimum Pager necessary to exercise Capture without a
// browser.  Screenshot honours the Path option so output-file behaviour is
// observable.
type stubPage struct {
	gotoErr error
	waitErr error

	// selectors whose click attempt should fail
	missingClicks map[string]bool

	visited  []string
	waited   []string
	clicked  []string
	captured []string

	html string
}

func (p *stubPage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.visited = append(p.visited, url)
	return nil, p.gotoErr
}

func (p *stubPage) WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
	p.waited = append(p.waited, selector)
	return nil, p.waitErr
}

func (p *stubPage) Click(selector string, options ...playwright.PageClickOptions) error {
	if p.missingClicks[selector] {
		return errors.New("timeout exceeded waiting for selector")
	}
	p.clicked = append(p.clicked, selector)
	return nil
}

func (p *stubPage) Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error) {
	png := []byte("\x89PNG fake")
	for _, opt := range options {
		if opt.Path != nil {
			if err := os.WriteFile(*opt.Path, png, 0644); err != nil {
				return nil, err
			}
			p.captured = append(p.captured, *opt.Path)
		}
	}
	return png, nil
}

func (p *stubPage) SetViewportSize(width, height int) error { return nil }

func (p *stubPage) Content() (string, error) { return p.html, nil }

func TestParseWaitStrategy(t *testing.T) {
	tests := []struct {
		name    string
		waitfor string
		value   string
		want    WaitStrategy
	}{
		{"class marker", "class", "site-info", WaitStrategy{Kind: WaitClass, Marker: "site-info"}},
		{"id marker", "id", "main-pane", WaitStrategy{Kind: WaitID, Marker: "main-pane"}},
		{"time castable to int", "time", "30", WaitStrategy{Kind: WaitTime, Delay: 30 * time.Second}},
		{"time not an int", "time", "soonish", WaitStrategy{Kind: WaitNone}},
		{"unknown kind", "vibes", "whatever", WaitStrategy{Kind: WaitNone}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseWaitStrategy(tc.waitfor, tc.value))
		})
	}
}

func TestCaptureFixedWaitProducesFile(t *testing.T) {
	page := &stubPage{}
	out := filepath.Join(t.TempDir(), "basic_info.png")

	result, err := Capture(page, CaptureRequest{
		URL:         "https://portal.hood.cloudgenix.com/#element/config/99001/basic_info",
		Wait:        ParseWaitStrategy("time", "0"),
		SettleDelay: time.Millisecond,
		OutputPath:  out,
	})
	require.NoError(t, err)

	assert.False(t, result.TimedOut)
	assert.Zero(t, result.ClicksRequested)
	assert.FileExists(t, out)
	assert.Empty(t, page.waited, "fixed wait must not touch the DOM")
}

func TestCaptureMarkerTimeoutIsNotFatal(t *testing.T) {
	page := &stubPage{waitErr: errors.New("timeout 15000ms exceeded")}
	out := filepath.Join(t.TempDir(), "map.png")

	result, err := Capture(page, CaptureRequest{
		URL:         "https://portal.hood.cloudgenix.com/#map",
		Wait:        WaitForClass("leaflet-map-pane"),
		WaitTimeout: time.Second,
		SettleDelay: time.Millisecond,
		OutputPath:  out,
	})
	require.NoError(t, err)

	assert.True(t, result.TimedOut)
	assert.FileExists(t, out, "a degraded page still gets screenshotted")
	assert.Equal(t, []string{".leaflet-map-pane"}, page.waited)
}

func TestCaptureBestEffortClicks(t *testing.T) {
	page := &stubPage{
		missingClicks: map[string]bool{"xpath=/html/body/div[1]/missing": true},
	}
	out := filepath.Join(t.TempDir(), "iface.png")

	result, err := Capture(page, CaptureRequest{
		URL:         "https://portal.hood.cloudgenix.com/#element/config/99001/interfaces/123",
		Wait:        WaitForID("collapsible-form"),
		WaitTimeout: time.Second,
		Clicks: []string{
			"xpath=/html/body/div[1]/present",
			"xpath=/html/body/div[1]/missing",
		},
		SettleDelay: time.Millisecond,
		OutputPath:  out,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ClicksRequested)
	assert.Equal(t, 1, result.ClicksSucceeded)
	assert.FileExists(t, out)
}

func TestCaptureNavigationFailure(t *testing.T) {
	page := &stubPage{gotoErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}

	_, err := Capture(page, CaptureRequest{
		URL:         "https://portal.nowhere.invalid/#map",
		SettleDelay: time.Millisecond,
		OutputPath:  filepath.Join(t.TempDir(), "map.png"),
	})
	require.Error(t, err)
	assert.Empty(t, page.captured)
}

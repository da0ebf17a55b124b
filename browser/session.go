package browser

import (
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
)

const (
	// Long window, lots of room.  The portal lays out for 1920-wide screens.
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080

	// Default per-operation timeout handed to playwright, in milliseconds.
	DefaultTimeout = 25000.0
)

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window.
	// CI wants headless; --headful exists for debugging.
	Headless bool

	// AuthToken, when set, is injected as an X-Auth-Token header on every
	// request the page makes, so the portal session is authenticated without
	// driving a login form.
	AuthToken string

	// Viewport sets the initial viewport size.
	Viewport *Viewport

	// Timeout sets the default timeout for page operations (in milliseconds).
	Timeout float64
}

// Session wraps one live headless browser: a Playwright instance, a single
// browser, a single context and a single page.  The capture pipeline is
// strictly sequential so one page is all we ever need.
type Session struct {
	pw      *playwright.Playwright
	Browser playwright.Browser
	Context playwright.BrowserContext
	Page    playwright.Page
}

// NewSession installs (if needed) and launches Chromium, and prepares a page
// with the portal auth header baked into the browser context.
func NewSession(opts SessionOptions) (*Session, error) {
	// Discard the installer's output; it interferes with our own progress display.
	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("browser: failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("browser: failed to start playwright: %w", err)
	}

	if opts.Viewport == nil {
		opts.Viewport = &Viewport{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		}
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("browser: failed to launch chromium: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
	}
	if opts.AuthToken != "" {
		contextOpts.ExtraHttpHeaders = map[string]string{
			"X-Auth-Token": opts.AuthToken,
		}
	}

	context, err := browser.NewContext(contextOpts)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("browser: failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("browser: failed to create page: %w", err)
	}

	page.SetDefaultTimeout(opts.Timeout)

	return &Session{
		pw:      pw,
		Browser: browser,
		Context: context,
		Page:    page,
	}, nil
}

// Close tears the whole session down.  Individual close errors are ignored so
// cleanup always runs to completion.
func (s *Session) Close() error {
	_ = s.Page.Close()
	_ = s.Context.Close()
	_ = s.Browser.Close()

	if err := s.pw.Stop(); err != nil {
		return fmt.Errorf("browser: failed to stop playwright: %w", err)
	}

	return nil
}

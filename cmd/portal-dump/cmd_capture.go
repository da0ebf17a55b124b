/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/toothbrush/portal-dump/browser"
	"github.com/toothbrush/portal-dump/sitedump"
	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

var captureUsage = strings.TrimSpace(`
Log into the CloudGenix portal and screenshot the configured sites.

CONFIG_FILE is a YAML file listing the sites (and per-site elements) to document, e.g.:

    sites:
      Chicago Branch:
        elements:
          - Chicago ion 3000
      Seattle DC: {}
`)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture CONFIG_FILE",
	Short: "Screenshot the portal pages of the sites in CONFIG_FILE",
	Long:  captureUsage,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("cmd: expected exactly one CONFIG_FILE argument, received %d: %v", len(args), args)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  ExtractText: %v\n", ExtractText)
		debugLog("  SkipTopology: %v\n", SkipTopology)
		return runCapture(cmd, args[0])
	},
}

var (
	WithVCR      bool
	ExtractText  bool
	SkipTopology bool
	Headful      bool
)

func init() {
	rootCmd.AddCommand(captureCmd)

	// Cobra also supports local flags, which will only run
	// when this action is called directly.
	captureCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache API responses")
	captureCmd.Flags().BoolVar(&ExtractText, "extract-text", false, "also save a Markdown text extract of each captured page")
	captureCmd.Flags().BoolVar(&SkipTopology, "skip-topology", false, "skip the tenant-wide topology map page")
	captureCmd.Flags().BoolVar(&Headful, "headful", false, "run the browser with a visible window, for debugging")
}

func runCapture(cmd *cobra.Command, planFile string) error {
	started := time.Now()

	if LocalStore == "" {
		return fmt.Errorf("cmd: no location set for screenshot store; use --store or set it in your config file")
	}

	storePath, err := homedir.Expand(LocalStore)
	if err != nil {
		return fmt.Errorf("cmd: couldn't expand homedir: %w", err)
	}

	if _, err := os.Stat(storePath); err != nil {
		return fmt.Errorf("cmd: couldn't stat store path %s: %w", storePath, err)
	}

	plan, err := sitedump.LoadPlan(planFile)
	if err != nil {
		return fmt.Errorf("cmd: couldn't load site plan: %w", err)
	}
	debugLog("  plan: %d sites\n", len(plan))

	api, token, err := newPortalAPI()
	if err != nil {
		return err
	}

	if WithVCR {
		// set up VCR recordings.
		opts := &recorder.Options{
			CassetteName:       "fixtures/cloudgenix-stuff",
			Mode:               recorder.ModeReplayWithNewEpisodes,
			SkipRequestLatency: true,
			RealTransport:      http.DefaultTransport,
		}
		r, err := recorder.NewWithOptions(opts)
		if err != nil {
			return fmt.Errorf("cmd: couldn't set up go-vcr recording: %w", err)
		}

		defer r.Stop() // Make sure recorder is stopped once done with it

		// Add a hook which removes auth headers from all requests
		hook := func(i *cassette.Interaction) error {
			delete(i.Request.Headers, "X-Auth-Token")
			return nil
		}
		r.AddHook(hook, recorder.AfterCaptureHook)
		r.SetReplayableInteractions(true)

		api.Client = r.GetDefaultClient()
	}

	ctx := cmd.Context()

	// get current user information; doubles as a token sanity check
	profile, err := api.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("cmd: couldn't query profile: %w", err)
	}

	fmt.Printf("Logged in to CloudGenix as '%s %s (%s)'...\n", profile.FirstName, profile.LastName, profile.Email)

	region := Region
	if region == "" {
		region = profile.Region
	}
	if region == "" {
		return fmt.Errorf("cmd: profile has no region; provide --region")
	}
	debugLog("  region: %s\n", region)

	session, err := browser.NewSession(browser.SessionOptions{
		Headless:  !Headful,
		AuthToken: token,
	})
	if err != nil {
		return fmt.Errorf("cmd: couldn't start browser: %w", err)
	}
	defer session.Close()

	var logger *log.Logger
	if Debug {
		logger = log.New(os.Stderr, "[portal-dump] ", 0)
	}

	shotter := sitedump.Screenshotter{
		StorePath:    storePath,
		Region:       region,
		API:          api,
		Page:         session.Page,
		Build:        sitedump.DetectBuildInfo(os.Getenv),
		Logger:       logger,
		ExtractText:  ExtractText,
		SkipTopology: SkipTopology,
		ShowProgress: !Debug,
	}

	if err := shotter.Prefetch(ctx); err != nil {
		return fmt.Errorf("cmd: couldn't prefetch portal inventory: %w", err)
	}

	sites, elements := shotter.Lookups()
	fmt.Printf("Found %d sites and %d elements on the portal.\n", len(sites), len(elements))

	records, err := shotter.CaptureAll(ctx, plan)
	if err != nil {
		return fmt.Errorf("cmd: capture run failed: %w", err)
	}

	if err := shotter.WriteMarkdownIndexes(records); err != nil {
		return fmt.Errorf("cmd: couldn't write Markdown indexes: %w", err)
	}

	captured := 0
	for _, site := range records {
		captured++ // site-info
		for _, element := range site.Elements {
			captured += sitedump.ElementPageCount()
			captured += len(element.Interfaces)
		}
	}

	color.New(color.FgGreen).Printf("Captured %d sites (%d screenshots) in %.1fs.\n",
		len(records), captured, time.Since(started).Seconds())
	fmt.Printf("Markdown tree written under %s.\n", storePath)

	return nil
}

/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toothbrush/portal-dump/cloudgenix"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	yaml "gopkg.in/yaml.v3"
)

var listSitesUsage = strings.TrimSpace(`
If you want to find out what sites your CloudGenix tenant has, use this command.  With --yaml it
prints a plan skeleton you can save and feed straight to 'capture'.
`)

var listSitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Print list of sites",
	Long:  listSitesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		api, _, err := newPortalAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing CloudGenix sites...\n")
		sites, err := api.ListSites(ctx)
		if err != nil {
			return fmt.Errorf("cmd: couldn't list sites: %w", err)
		}

		log.Printf("Found %d sites.\n", len(sites))

		lookup := cloudgenix.SiteLookup(sites)
		names := maps.Keys(lookup)
		slices.Sort(names)

		if YamlOutput {
			skeleton := map[string]map[string]planSite{"sites": {}}
			for _, name := range names {
				skeleton["sites"][name] = planSite{}
			}
			out, err := yaml.Marshal(skeleton)
			if err != nil {
				return fmt.Errorf("cmd: couldn't render plan skeleton: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		fmt.Printf("sites:\n")
		for _, name := range names {
			fmt.Printf("  - %s (id %s)\n", name, lookup[name])
		}

		return nil
	},
}

// planSite is the per-site shape of a capture plan document.
type planSite struct {
	Elements []string `yaml:"elements,omitempty"`
}

func init() {
	listCmd.AddCommand(listSitesCmd)

	listSitesCmd.Flags().BoolVar(&YamlOutput, "yaml", false, "print as a capture plan skeleton")
}

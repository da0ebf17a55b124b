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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	yaml "gopkg.in/yaml.v3"
)

var listElementsUsage = strings.TrimSpace(`
List the elements (ION devices) of your CloudGenix tenant, grouped under their sites.  With --yaml
it prints a complete plan document you can save and feed straight to 'capture'.
`)

var listElementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "Print list of elements, grouped by site",
	Long:  listElementsUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		api, _, err := newPortalAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing CloudGenix sites and elements...\n")
		sites, err := api.ListSites(ctx)
		if err != nil {
			return fmt.Errorf("cmd: couldn't list sites: %w", err)
		}
		elements, err := api.ListElements(ctx)
		if err != nil {
			return fmt.Errorf("cmd: couldn't list elements: %w", err)
		}

		log.Printf("Found %d elements across %d sites.\n", len(elements), len(sites))

		siteNames := map[string]string{}
		for _, site := range sites {
			siteNames[site.ID] = site.Name
		}

		// elements not assigned to any site go under an empty key
		bySite := map[string][]string{}
		for _, element := range elements {
			siteName := siteNames[element.SiteID]
			bySite[siteName] = append(bySite[siteName], element.Name)
		}
		for _, names := range bySite {
			slices.Sort(names)
		}

		sortedSites := maps.Keys(bySite)
		slices.Sort(sortedSites)

		if YamlOutput {
			plan := map[string]map[string]planSite{"sites": {}}
			for _, siteName := range sortedSites {
				if siteName == "" {
					continue
				}
				plan["sites"][siteName] = planSite{Elements: bySite[siteName]}
			}
			out, err := yaml.Marshal(plan)
			if err != nil {
				return fmt.Errorf("cmd: couldn't render plan: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		for _, siteName := range sortedSites {
			if siteName == "" {
				fmt.Printf("(unassigned):\n")
			} else {
				fmt.Printf("%s:\n", siteName)
			}
			for _, elementName := range bySite[siteName] {
				fmt.Printf("  - %s\n", elementName)
			}
		}

		return nil
	},
}

func init() {
	listCmd.AddCommand(listElementsCmd)

	listElementsCmd.Flags().BoolVar(&YamlOutput, "yaml", false, "print as a capture plan document")
}

package sitedump

import (
	"fmt"
	"path"
	"strings"
)

// InterfaceRecord, ElementRecord and SiteRecord mirror the output directory
// tree.  They are filled in during capture and drive the Markdown pass
// afterwards.
type InterfaceRecord struct {
	Name   string
	FSName string
}

type ElementRecord struct {
	Name       string
	FSName     string
	Interfaces []InterfaceRecord
}

type SiteRecord struct {
	Name     string
	FSName   string
	Elements []ElementRecord
}

// imgWidth keeps the embedded screenshots readable on GitHub without being
// full-bleed.
const imgWidth = 1110

func img(alt, src string) string {
	return fmt.Sprintf("<img alt=%q src=\"%s?raw=1\" width=\"%d\">", alt, src, imgWidth)
}

// buildAnnotation renders the optional CI metadata lines.  When a field is
// absent the whole line is omitted; no empty placeholders.
func buildAnnotation(info BuildInfo) string {
	var b strings.Builder
	if info.Commit != "" {
		fmt.Fprintf(&b, "\n\ncommit: %s", info.Commit)
	}
	if info.System != "" {
		fmt.Fprintf(&b, "\n\n%s job id: [%s](%s)", info.System, info.BuildID, info.BuildURL)
	}
	return b.String()
}

// topologyReadme is the root index: the map screenshot plus a link per site.
func topologyReadme(sites []SiteRecord, info BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Network Topology%s\n\n", buildAnnotation(info))
	fmt.Fprintf(&b, "%s\n\n", img("Topology Map", "map.png"))
	b.WriteString("### Sites\n<ul>\n")
	for _, site := range sites {
		fmt.Fprintf(&b, "<li>\n<A href=\"%s/README.md\">%s</A>\n</li>\n", site.FSName, site.Name)
	}
	b.WriteString("</ul>\n")

	return b.String()
}

func siteReadme(site SiteRecord, info BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Site: %s%s\n\n", site.Name, buildAnnotation(info))
	b.WriteString("[Back To Topology](../README.md)\n")
	fmt.Fprintf(&b, "%s\n\n", img("Site Card", "site-info.png"))
	b.WriteString("### Elements\n<ul>\n")
	for _, element := range site.Elements {
		fmt.Fprintf(&b, "<li>\n<A href=\"%s/README.md\">%s</A>\n</li>\n", element.FSName, element.Name)
	}
	b.WriteString("</ul>\n")

	return b.String()
}

// elementSections is the fixed presentation order of an element README.  It
// deliberately differs from capture order, which is tuned around portal
// quirks rather than readability.
var elementSections = []struct {
	Heading  string
	Alt      string
	Filename string
}{
	{"Basic Info", "Basic Info", "basic_info.png"},
	{"Device Toolkit", "Device Toolkit", "device_toolkit.png"},
	{"Routing/BGP Peers", "BGP Peers", "bgp_peers.png"},
	{"Routing/BGP Route Maps", "BGP Route Maps", "bgp_route_maps.png"},
	{"Routing/BGP AS-Path Access Lists", "BGP AS-Path Access Lists", "bgp_aspath_acl.png"},
	{"Routing/BGP Prefix Lists", "BGP Prefix Lists", "bgp_prefix_lists.png"},
	{"Routing/BGP IP Community Lists", "BGP IP Community Lists", "bgp_ip_community_lists.png"},
	{"Routing/Static", "Static Routes", "static_routes.png"},
	{"SNMP", "SNMP", "snmp.png"},
	{"SYSLOG", "SYSLOG", "syslog.png"},
	{"NTP", "NTP", "ntp.png"},
}

func elementReadme(element ElementRecord, info BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Element: %s%s\n\n", element.Name, buildAnnotation(info))
	b.WriteString("[Back To Site](../README.md)\n\n")

	b.WriteString("### Interfaces\n")
	if len(element.Interfaces) > 0 {
		b.WriteString("<ul>\n<li>\n<A href=\"interfaces/README.md\">Interfaces Detail</A>\n</li>\n</ul>\n")
	}
	fmt.Fprintf(&b, "%s\n\n", img("Interfaces Summary", "interfaces_summary.png"))

	for _, section := range elementSections {
		fmt.Fprintf(&b, "### %s\n%s\n\n", section.Heading, img(section.Alt, section.Filename))
	}

	return b.String()
}

func interfacesReadme(element ElementRecord, info BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Element: %s Interfaces%s\n\n", element.Name, buildAnnotation(info))
	b.WriteString("[Back To Element](../README.md)\n\n")

	for _, iface := range element.Interfaces {
		fmt.Fprintf(&b, "### %s\n%s\n\n", iface.Name, img(iface.Name, iface.FSName+".png"))
	}

	return b.String()
}

// WriteMarkdownIndexes emits the README tree for all captured records: one
// per site, one per element, and one per element's interface set (only when
// the element has interfaces).
func (s *Screenshotter) WriteMarkdownIndexes(records []SiteRecord) error {
	if err := s.writeIntoStore(path.Join(screenshotsDir, "README.md"), topologyReadme(records, s.Build)); err != nil {
		return fmt.Errorf("sitedump: couldn't write topology README: %w", err)
	}

	for _, site := range records {
		siteDir := path.Join(screenshotsDir, site.FSName)
		if err := s.writeIntoStore(path.Join(siteDir, "README.md"), siteReadme(site, s.Build)); err != nil {
			return fmt.Errorf("sitedump: couldn't write README of site %s: %w", site.Name, err)
		}

		for _, element := range site.Elements {
			elementDir := path.Join(siteDir, element.FSName)
			if err := s.writeIntoStore(path.Join(elementDir, "README.md"), elementReadme(element, s.Build)); err != nil {
				return fmt.Errorf("sitedump: couldn't write README of element %s: %w", element.Name, err)
			}

			if len(element.Interfaces) == 0 {
				continue
			}
			if err := s.writeIntoStore(path.Join(elementDir, "interfaces", "README.md"), interfacesReadme(element, s.Build)); err != nil {
				return fmt.Errorf("sitedump: couldn't write interfaces README of element %s: %w", element.Name, err)
			}
		}
	}

	return nil
}

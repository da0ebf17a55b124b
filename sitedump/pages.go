package sitedump

import (
	"fmt"
	"time"
)

// The portal UI is a fragment-routed single-page app; every view we document
// hangs off one of these URL shapes.
const (
	topologyPageFmt  = "https://portal.%s.cloudgenix.com/#map"
	sitePageFmt      = "https://portal.%s.cloudgenix.com/#map/site/%s"
	elementPageFmt   = "https://portal.%s.cloudgenix.com/#element/config/%s/%s"
	interfacePageFmt = "https://portal.%s.cloudgenix.com/#element/config/%s/interfaces/%s"
)

// Click targets.  The portal offers no stable ids here, so these are full
// XPaths lifted from the rendered DOM.  A miss is fine, the capture carries on.
const (
	// The "what's new" modal pops over the map on fresh sessions.
	xpathCloseWhatsNew = "xpath=/html/body/div[1]/div[4]/div/div/img"

	// The two collapsed sections on an interface detail page.
	xpathInterfaceExpand1 = "xpath=/html/body/div[1]/section/div/div[2]/div/div/div[2]/div/div/div[3]/div/div/form/div[2]/div/div/div[1]/a"
	xpathInterfaceExpand2 = "xpath=/html/body/div[1]/section/div/div[2]/div/div/div[2]/div/div/div[3]/div/div/form/div[3]/div/div/div[1]/a"
)

func topologyURL(region string) string {
	return fmt.Sprintf(topologyPageFmt, region)
}

func siteURL(region, siteID string) string {
	return fmt.Sprintf(sitePageFmt, region, siteID)
}

func elementURL(region, elementID, pagePath string) string {
	return fmt.Sprintf(elementPageFmt, region, elementID, pagePath)
}

func interfaceURL(region, elementID, interfaceID string) string {
	return fmt.Sprintf(interfacePageFmt, region, elementID, interfaceID)
}

// ElementPage is one entry in the fixed catalog of element views to capture.
type ElementPage struct {
	// Title is the human name used in progress output.
	Title string

	// URLPath is the fragment path under #element/config/<id>/.
	URLPath string

	// WaitClass is the CSS class whose presence means the view has rendered.
	WaitClass string

	// Filename is the PNG name inside the element's directory.
	Filename string

	// WaitTimeout overrides the default marker-wait bound when nonzero.
	WaitTimeout time.Duration

	// TallWindow bumps the viewport to double height for long tables.
	TallWindow bool
}

// ElementPageCount reports how many catalog pages are captured per element.
func ElementPageCount() int {
	return len(elementPages)
}

// elementPages is captured in this exact order.  The static/bgp views can get
// stuck if they're the last page visited, so static_routes goes first and is
// always followed by something else.  The first element view after login also
// warms portal caches, hence its longer wait.
var elementPages = []ElementPage{
	{Title: "Static Routes", URLPath: "routing/static_routes", WaitClass: "static-routing-table", Filename: "static_routes.png", WaitTimeout: 60 * time.Second},
	{Title: "Basic Config", URLPath: "basic_info", WaitClass: "form-group", Filename: "basic_info.png"},
	{Title: "BGP Peers", URLPath: "routing/bgp:peers", WaitClass: "bgpPeersTable", Filename: "bgp_peers.png"},
	{Title: "Device Toolkit", URLPath: "device_toolkit", WaitClass: "form-group", Filename: "device_toolkit.png"},
	{Title: "BGP Route Maps", URLPath: "routing/bgp:route_maps", WaitClass: "routeMapsTable", Filename: "bgp_route_maps.png"},
	{Title: "Interfaces Summary", URLPath: "interfaces", WaitClass: "interface_name-wrapper", Filename: "interfaces_summary.png", TallWindow: true},
	{Title: "BGP Prefix Lists", URLPath: "routing/bgp:prefix_lists", WaitClass: "prefixListsTable", Filename: "bgp_prefix_lists.png"},
	{Title: "SNMP", URLPath: "snmp", WaitClass: "snmpAgentView", Filename: "snmp.png"},
	{Title: "BGP AS-Path Access Lists", URLPath: "routing/bgp:as_path_lists", WaitClass: "asPathListsTable", Filename: "bgp_aspath_acl.png"},
	{Title: "SYSLOG", URLPath: "syslog_export", WaitClass: "syslog-export-table", Filename: "syslog.png"},
	{Title: "BGP IP Community Lists", URLPath: "routing/bgp:ip_community_lists", WaitClass: "ipCommunityListsTable", Filename: "bgp_ip_community_lists.png"},
	{Title: "NTP", URLPath: "ntp_client", WaitClass: "ntp-servers-table", Filename: "ntp.png"},
}

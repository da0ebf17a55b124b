package cloudgenix

// Profile describes the tenant operator the auth token belongs to.  The only
// field we genuinely depend on is Region, which selects the portal UI host
// (portal.<region>.cloudgenix.com).
type Profile struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	TenantID  string `json:"tenant_id,omitempty"`
	Region    string `json:"region,omitempty"`
}

// Site is a logical location grouping one or more elements.
type Site struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	AdminState  string `json:"admin_state,omitempty"`
	ElementRole string `json:"element_cluster_role,omitempty"`
}

// Element is a managed network device assigned to a site.
type Element struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SiteID      string `json:"site_id,omitempty"`
	SerialNum   string `json:"serial_number,omitempty"`
	State       string `json:"state,omitempty"`
	Role        string `json:"role,omitempty"`
	SoftwareVer string `json:"software_version,omitempty"`
}

// Interface is a network interface belonging to an element.
type Interface struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	SiteWanIfID string `json:"site_wan_interface_ids,omitempty"`
	AdminUp     bool   `json:"admin_up,omitempty"`
}

// The API wraps every collection response in the same envelope.
type siteListResponse struct {
	Count int    `json:"count"`
	Items []Site `json:"items"`
}

type elementListResponse struct {
	Count int       `json:"count"`
	Items []Element `json:"items"`
}

type interfaceListResponse struct {
	Count int         `json:"count"`
	Items []Interface `json:"items"`
}

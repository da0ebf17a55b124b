package cloudgenix

// SiteLookup builds a site name → ID map.  Names are not guaranteed unique on
// the controller side; if a tenant has duplicates, the later item wins,
// matching the SDK behaviour this replaces.
func SiteLookup(sites []Site) map[string]string {
	n2id := make(map[string]string, len(sites))
	for _, site := range sites {
		if site.Name == "" {
			continue
		}
		n2id[site.Name] = site.ID
	}
	return n2id
}

// ElementLookup builds an element name → ID map.  Same duplicate-name caveat
// as SiteLookup.
func ElementLookup(elements []Element) map[string]string {
	n2id := make(map[string]string, len(elements))
	for _, element := range elements {
		if element.Name == "" {
			continue
		}
		n2id[element.Name] = element.ID
	}
	return n2id
}

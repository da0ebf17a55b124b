package cloudgenix

// ListQuery defines the query parameters accepted by the collection GET
// endpoints (sites, elements, interfaces).  The controller returns the whole
// collection when no limit is given; we expose it anyway so callers can cap
// very large tenants.
type ListQuery struct {
	Limit int `url:"limit,omitempty"` // collection item cap; 0 means controller default (everything)
}

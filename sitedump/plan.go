package sitedump

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// SitePlan is one site to document, with its element names in config-file
// order.
type SitePlan struct {
	Name     string
	Elements []string
}

// Plan is the ordered list of sites to document, derived from a
// cloudgenix_config YAML file.
type Plan []SitePlan

// LoadPlan reads and parses the sites config file.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sitedump: couldn't read config file %s: %w", path, err)
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		return nil, fmt.Errorf("sitedump: couldn't parse config file %s: %w", path, err)
	}

	return plan, nil
}

// ParsePlan extracts the site → element-names structure from a
// cloudgenix_config document.  The file belongs to the config tool, so we
// only pick out what we need and ignore the rest.  yaml.MapSlice keeps the
// document's own ordering intact.
func ParsePlan(raw []byte) (Plan, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("sitedump: config is not a YAML mapping: %w", err)
	}

	sitesValue, ok := lowerVersionGet(doc, "sites")
	if !ok {
		return nil, fmt.Errorf("sitedump: config has no 'sites' section")
	}

	sites, ok := sitesValue.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("sitedump: 'sites' section is not a mapping")
	}

	plan := Plan{}
	for _, siteItem := range sites {
		siteName, ok := siteItem.Key.(string)
		if !ok {
			return nil, fmt.Errorf("sitedump: site name is not a string: %v", siteItem.Key)
		}

		sitePlan := SitePlan{Name: siteName}

		// A site body can legitimately be empty, or have no elements yet.
		if siteBody, ok := siteItem.Value.(yaml.MapSlice); ok {
			if elementsValue, ok := lowerVersionGet(siteBody, "elements"); ok {
				elements, ok := elementsValue.(yaml.MapSlice)
				if !ok && elementsValue != nil {
					return nil, fmt.Errorf("sitedump: 'elements' of site %s is not a mapping", siteName)
				}
				for _, elementItem := range elements {
					elementName, ok := elementItem.Key.(string)
					if !ok {
						return nil, fmt.Errorf("sitedump: element name under site %s is not a string: %v",
							siteName, elementItem.Key)
					}
					sitePlan.Elements = append(sitePlan.Elements, elementName)
				}
			}
		}

		plan = append(plan, sitePlan)
	}

	return plan, nil
}

// lowerVersionGet finds a key in a config mapping that may carry an API
// version suffix, e.g. "sites v4.5" as well as plain "sites".  Matching is
// case-insensitive, same as the config tool that writes these files.
func lowerVersionGet(m yaml.MapSlice, name string) (interface{}, bool) {
	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		lowered := strings.ToLower(key)
		if lowered == name || strings.HasPrefix(lowered, name+" ") {
			return item.Value, true
		}
	}
	return nil, false
}

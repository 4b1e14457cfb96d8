package templstore

// Mapping holds the template strings of a single namespace, keyed by
// template name. It is read-only after construction; a refresh replaces the
// whole TemplateMap rather than mutating a Mapping in place.
type Mapping map[string]string

// Get retrieves the template string for name.
// Returns the string and true if found, or empty string and false if not.
func (m Mapping) Get(name string) (string, bool) {
	tmpl, ok := m[name]
	return tmpl, ok
}

// Len returns the number of templates in the namespace.
func (m Mapping) Len() int {
	return len(m)
}

// TemplateMap maps a namespace to its Mapping. It is the unit of data a
// TemplateStore produces: each successful parse yields a complete new map,
// never an incremental update.
type TemplateMap map[string]Mapping

// Get retrieves the Mapping for a namespace.
func (tm TemplateMap) Get(namespace string) (Mapping, bool) {
	mapping, ok := tm[namespace]
	return mapping, ok
}

// Entries returns the total number of templates across all namespaces.
func (tm TemplateMap) Entries() int {
	var n int
	for _, mapping := range tm {
		n += len(mapping)
	}
	return n
}

// overlay inserts every entry of other into tm at entry granularity:
// a namespace+name key present in both ends up with other's value, sibling
// keys under the same namespace survive.
func (tm TemplateMap) overlay(other TemplateMap) {
	for namespace, mapping := range other {
		dst, ok := tm[namespace]
		if !ok {
			dst = make(Mapping, len(mapping))
			tm[namespace] = dst
		}
		for name, tmpl := range mapping {
			dst[name] = tmpl
		}
	}
}

package search

import "property_search/internal/domain"

// Filter keeps the properties whose name contains term, ignoring case.
// Order is preserved; an empty term returns props unchanged.
func Filter(props []domain.Property, term string) []domain.Property {
	if term == "" {
		return props
	}
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if ContainsFold(p.Name, term) {
			out = append(out, p)
		}
	}
	return out
}

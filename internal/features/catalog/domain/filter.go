package domain

import (
	"sort"
	"strings"
)

// CategoryAll selects every department.
const CategoryAll = "All"

// Price range defaults, matching the storefront's price slider bounds.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 200000
)

// Criteria holds the active product filters. All predicates are ANDed.
type Criteria struct {
	// Category is a department name or CategoryAll.
	Category string `json:"category"`
	// SearchTerm is matched case-insensitively against name and description.
	SearchTerm string `json:"search_term"`
	// MinPrice and MaxPrice bound the unit price, inclusive.
	MinPrice int `json:"min_price"`
	MaxPrice int `json:"max_price"`
	// Size, when non-empty, requires the product's size set to contain it.
	Size string `json:"size"`
	// Color, when non-empty, requires the product's color set to contain it.
	Color string `json:"color"`
}

// DefaultCriteria returns the criteria that match the full catalog.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// SetCategory switches the department and resets the price range, size, and
// color to defaults. A stale size/color combination from another department
// would otherwise hide every result after the switch.
func (c *Criteria) SetCategory(category string) {
	c.Category = category
	c.MinPrice = DefaultMinPrice
	c.MaxPrice = DefaultMaxPrice
	c.Size = ""
	c.Color = ""
}

// Matches reports whether the product satisfies every active predicate.
func (c Criteria) Matches(p Product) bool {
	if c.Category != CategoryAll && string(p.Category) != c.Category {
		return false
	}

	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	if p.Price < c.MinPrice || p.Price > c.MaxPrice {
		return false
	}

	if c.Size != "" && !containsLabel(p.Sizes, c.Size) {
		return false
	}

	if c.Color != "" && !containsLabel(p.Colors, c.Color) {
		return false
	}

	return true
}

// Filter returns the subset of products matching the criteria, preserving
// catalog order.
func Filter(products []Product, c Criteria) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Facets holds the selectable size and color options for the current category.
type Facets struct {
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
}

// DeriveFacets collects the distinct sizes and colors across the
// category-filtered subset only, sorted ascending. Deriving facets before the
// search/price/size/color predicates keeps options visible while an unrelated
// filter is tightened.
func DeriveFacets(products []Product, category string) Facets {
	sizes := make(map[string]struct{})
	colors := make(map[string]struct{})

	for _, p := range products {
		if category != CategoryAll && string(p.Category) != category {
			continue
		}
		for _, s := range p.Sizes {
			sizes[s] = struct{}{}
		}
		for _, c := range p.Colors {
			colors[c] = struct{}{}
		}
	}

	return Facets{
		Sizes:  sortedKeys(sizes),
		Colors: sortedKeys(colors),
	}
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

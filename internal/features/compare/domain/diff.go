package domain

import (
	"sort"
	"strconv"
	"strings"

	catalog "keroluxe-store/internal/features/catalog/domain"
)

// AttributeDiff reports one comparable attribute across the compared products.
type AttributeDiff struct {
	// Attribute is the attribute name (price, category, description, colors, sizes).
	Attribute string `json:"attribute"`
	// Values holds the attribute value per product, in compare-set order.
	Values []string `json:"values"`
	// Differs is true iff the products do not all share the same value.
	Differs bool `json:"differs"`
}

// Report is the full per-attribute comparison of the compare set.
type Report struct {
	// ProductIDs lists the compared products in compare-set order.
	ProductIDs []string `json:"product_ids"`
	// Attributes holds one entry per comparable attribute.
	Attributes []AttributeDiff `json:"attributes"`
}

// Compare computes per-attribute equality across the given products. With
// fewer than two products every attribute reports as non-differing.
// Slice-valued attributes are compared order-independently.
func Compare(products []catalog.Product) Report {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	return Report{
		ProductIDs: ids,
		Attributes: []AttributeDiff{
			diff("price", products, func(p catalog.Product) string {
				return strconv.Itoa(p.Price)
			}),
			diff("category", products, func(p catalog.Product) string {
				return string(p.Category)
			}),
			diff("description", products, func(p catalog.Product) string {
				return p.Description
			}),
			diff("colors", products, func(p catalog.Product) string {
				return sortedJoin(p.Colors)
			}),
			diff("sizes", products, func(p catalog.Product) string {
				return sortedJoin(p.Sizes)
			}),
		},
	}
}

func diff(name string, products []catalog.Product, value func(catalog.Product) string) AttributeDiff {
	values := make([]string, len(products))
	distinct := make(map[string]struct{}, len(products))
	for i, p := range products {
		values[i] = value(p)
		distinct[values[i]] = struct{}{}
	}

	return AttributeDiff{
		Attribute: name,
		Values:    values,
		Differs:   len(products) >= 2 && len(distinct) > 1,
	}
}

func sortedJoin(labels []string) string {
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

package domain

// Category classifies a product into one of the store's fixed departments.
type Category string

const (
	CategoryMen      Category = "Men"
	CategoryWomen    Category = "Women"
	CategoryUnisex   Category = "Unisex"
	CategoryBales    Category = "Bales"
	CategoryPerfumes Category = "Perfumes"
)

// Categories lists every department in display order.
var Categories = []Category{
	CategoryMen,
	CategoryWomen,
	CategoryUnisex,
	CategoryBales,
	CategoryPerfumes,
}

// IsValid reports whether the category is one of the known departments.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a catalog item. Products are immutable for the session;
// prices are whole naira.
type Product struct {
	// ID is the unique, stable identifier for the product.
	ID string `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Price is the unit price in naira.
	Price int `json:"price"`
	// Category is the department the product belongs to.
	Category Category `json:"category"`
	// Description is the short marketing description.
	Description string `json:"description"`
	// Image is the primary image URL.
	Image string `json:"image"`
	// Images holds additional image URLs for the carousel, if any.
	Images []string `json:"images,omitempty"`
	// Sizes lists the available size labels. May be empty.
	Sizes []string `json:"sizes"`
	// Colors lists the available color labels. May be empty.
	Colors []string `json:"colors"`
}

// Clone returns a value copy with fresh slices, so the copy cannot alias the
// original's image, size, or color data.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Sizes = append([]string(nil), p.Sizes...)
	c.Colors = append([]string(nil), p.Colors...)
	return c
}

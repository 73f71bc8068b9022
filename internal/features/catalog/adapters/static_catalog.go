package adapters

import "keroluxe-store/internal/features/catalog/domain"

// StaticCatalog implements ports.CatalogProvider over a fixed product list.
type StaticCatalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// NewStaticCatalog creates a catalog over the given products. Pass nil to use
// the built-in store feed.
func NewStaticCatalog(products []domain.Product) *StaticCatalog {
	if products == nil {
		products = storeFeed
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &StaticCatalog{
		products: products,
		byID:     byID,
	}
}

// Products returns every product in catalog order.
func (c *StaticCatalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up a single product by id.
func (c *StaticCatalog) ProductByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// storeFeed is the Keroluxe inventory.
var storeFeed = []domain.Product{
	{
		ID:          "1",
		Name:        "Classic Luxury Polo",
		Price:       12000,
		Category:    domain.CategoryUnisex,
		Description: "High-quality cotton polo shirt available in various colors.",
		Image:       "https://picsum.photos/seed/polo1/400/400",
		Images: []string{
			"https://picsum.photos/seed/polo1/400/400",
			"https://picsum.photos/seed/polo1side/400/400",
			"https://picsum.photos/seed/polo1back/400/400",
		},
		Sizes:  []string{"S", "M", "L", "XL", "XXL"},
		Colors: []string{"Black", "White", "Navy", "Red"},
	},
	{
		ID:          "2",
		Name:        "Vintage Check Shirt",
		Price:       9500,
		Category:    domain.CategoryUnisex,
		Description: "Comfortable flannel shirt suitable for casual outings.",
		Image:       "https://picsum.photos/seed/shirt1/400/400",
		Images: []string{
			"https://picsum.photos/seed/shirt1/400/400",
			"https://picsum.photos/seed/shirt1detail/400/400",
		},
		Sizes:  []string{"M", "L", "XL"},
		Colors: []string{"Red/Black", "Blue/White"},
	},
	{
		ID:          "3",
		Name:        "Armless Summer Shirt",
		Price:       6000,
		Category:    domain.CategoryMen,
		Description: "Breathable armless shirt perfect for hot weather.",
		Image:       "https://picsum.photos/seed/armless/400/400",
		Images: []string{
			"https://picsum.photos/seed/armless/400/400",
			"https://picsum.photos/seed/armless2/400/400",
		},
		Sizes:  []string{"S", "M", "L"},
		Colors: []string{"White", "Grey", "Black"},
	},
	{
		ID:          "4",
		Name:        "Premium Denim Jeans",
		Price:       15000,
		Category:    domain.CategoryUnisex,
		Description: "Rugged and stylish denim jeans.",
		Image:       "https://picsum.photos/seed/jeans1/400/400",
		Images: []string{
			"https://picsum.photos/seed/jeans1/400/400",
			"https://picsum.photos/seed/jeans1back/400/400",
		},
		Sizes:  []string{"30", "32", "34", "36", "38"},
		Colors: []string{"Blue", "Black", "Grey"},
	},
	{
		ID:          "5",
		Name:        "Chic Crop Top",
		Price:       5500,
		Category:    domain.CategoryWomen,
		Description: "Trendy crop top for a stylish look.",
		Image:       "https://picsum.photos/seed/croptop/400/400",
		Images: []string{
			"https://picsum.photos/seed/croptop/400/400",
			"https://picsum.photos/seed/croptop2/400/400",
			"https://picsum.photos/seed/croptop3/400/400",
		},
		Sizes:  []string{"XS", "S", "M", "L"},
		Colors: []string{"Pink", "White", "Black"},
	},
	{
		ID:          "6",
		Name:        "Male Condom Boxers (Pack of 3)",
		Price:       7000,
		Category:    domain.CategoryMen,
		Description: "Seamless fit, ultra-comfortable material.",
		Image:       "https://picsum.photos/seed/boxer1/400/400",
		Images: []string{
			"https://picsum.photos/seed/boxer1/400/400",
			"https://picsum.photos/seed/boxer1pkg/400/400",
		},
		Sizes:  []string{"M", "L", "XL", "XXL"},
		Colors: []string{"Multicolor"},
	},
	{
		ID:          "7",
		Name:        "Premium Cotton Boxers",
		Price:       4000,
		Category:    domain.CategoryMen,
		Description: "100% pure cotton boxers.",
		Image:       "https://picsum.photos/seed/boxer2/400/400",
		Images: []string{
			"https://picsum.photos/seed/boxer2/400/400",
			"https://picsum.photos/seed/boxer2blue/400/400",
		},
		Sizes:  []string{"M", "L", "XL"},
		Colors: []string{"Blue", "Grey", "Black"},
	},
	{
		ID:          "8",
		Name:        "Banana Boxers",
		Price:       4500,
		Category:    domain.CategoryMen,
		Description: "Stretchable and durable banana style boxers.",
		Image:       "https://picsum.photos/seed/boxer3/400/400",
		Images: []string{
			"https://picsum.photos/seed/boxer3/400/400",
			"https://picsum.photos/seed/boxer3side/400/400",
		},
		Sizes:  []string{"L", "XL"},
		Colors: []string{"Yellow", "Black"},
	},
	{
		ID:          "9",
		Name:        "Bale: Ladies Tops (Mixed)",
		Price:       150000,
		Category:    domain.CategoryBales,
		Description: "A full sack of foreign used ladies tops. Grade A.",
		Image:       "https://picsum.photos/seed/bale1/400/400",
		Images: []string{
			"https://picsum.photos/seed/bale1/400/400",
			"https://picsum.photos/seed/bale1open/400/400",
		},
		Sizes:  []string{"Standard Bale"},
		Colors: []string{"Mixed"},
	},
	{
		ID:          "10",
		Name:        "Bale: Mixed Jeans",
		Price:       180000,
		Category:    domain.CategoryBales,
		Description: "Heavy bale of mixed denim jeans.",
		Image:       "https://picsum.photos/seed/bale2/400/400",
		Images: []string{
			"https://picsum.photos/seed/bale2/400/400",
			"https://picsum.photos/seed/bale2stack/400/400",
		},
		Sizes:  []string{"Standard Bale"},
		Colors: []string{"Mixed"},
	},
	{
		ID:          "11",
		Name:        "Bale: Sports Jersey",
		Price:       160000,
		Category:    domain.CategoryBales,
		Description: "Assorted sports jerseys from top clubs.",
		Image:       "https://picsum.photos/seed/bale3/400/400",
		Images: []string{
			"https://picsum.photos/seed/bale3/400/400",
			"https://picsum.photos/seed/bale3close/400/400",
		},
		Sizes:  []string{"Standard Bale"},
		Colors: []string{"Mixed"},
	},
	{
		ID:          "12",
		Name:        "Lattafa Asad",
		Price:       25000,
		Category:    domain.CategoryPerfumes,
		Description: "Long-lasting Arabian fragrance with spicy notes.",
		Image:       "https://picsum.photos/seed/lattafa/400/400",
		Images: []string{
			"https://picsum.photos/seed/lattafa/400/400",
			"https://picsum.photos/seed/lattafabox/400/400",
		},
		Sizes:  []string{"100ml"},
		Colors: []string{"Black/Gold"},
	},
	{
		ID:          "13",
		Name:        "Zara Gold",
		Price:       18000,
		Category:    domain.CategoryPerfumes,
		Description: "Elegant and sophisticated scent for daily wear.",
		Image:       "https://picsum.photos/seed/zara/400/400",
		Images: []string{
			"https://picsum.photos/seed/zara/400/400",
			"https://picsum.photos/seed/zarabottle/400/400",
		},
		Sizes:  []string{"80ml"},
		Colors: []string{"Gold"},
	},
	{
		ID:          "14",
		Name:        "Nivea Roll-on (Pack of 2)",
		Price:       4000,
		Category:    domain.CategoryPerfumes,
		Description: "48h protection, fresh scent.",
		Image:       "https://picsum.photos/seed/nivea/400/400",
		Images: []string{
			"https://picsum.photos/seed/nivea/400/400",
			"https://picsum.photos/seed/niveaback/400/400",
		},
		Sizes:  []string{"50ml"},
		Colors: []string{"White", "Blue"},
	},
	{
		ID:          "15",
		Name:        "Rexona MotionSense",
		Price:       3500,
		Category:    domain.CategoryPerfumes,
		Description: "Anti-perspirant deodorant.",
		Image:       "https://picsum.photos/seed/rexona/400/400",
		Images: []string{
			"https://picsum.photos/seed/rexona/400/400",
		},
		Sizes:  []string{"200ml"},
		Colors: []string{"Black", "Pink"},
	},
}

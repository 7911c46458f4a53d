package catalog

import "storefront/internal/models"

// Category is one of the fixed menu sections, in display order.
type Category struct {
	ID    string
	Label string
}

// Categories mirrors the storefront's menu navigation.
var Categories = []Category{
	{ID: "kebab", Label: "FAMILLE KEBAB"},
	{ID: "burger", Label: "NOS BURGERS"},
	{ID: "chick-n-snack", Label: "CHIC'N'SNACK"},
	{ID: "dessert", Label: "NOS DESSERTS"},
	{ID: "tres-speciaux", Label: "TRÈS SPECIAUX"},
	{ID: "boisson", Label: "BOISSONS"},
}

// supplementCategories are the sections whose products take bread, fries and
// sauce choices. Desserts and drinks are served as-is.
var supplementCategories = map[string]bool{
	"kebab":         true,
	"burger":        true,
	"chick-n-snack": true,
	"tres-speciaux": true,
}

// AllowsSupplements reports whether products in the category can be
// configured with supplements.
func AllowsSupplements(category string) bool {
	return supplementCategories[category]
}

// Quantity bounds for a single configuration.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// ClampQuantity bounds a requested quantity to [MinQuantity, MaxQuantity].
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// FilterByCategory returns the available products in a category, or all
// available products when category is empty. Catalog order is preserved.
func FilterByCategory(products []models.Product, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.Available() {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// SupplementsPrice returns the surcharge for a configuration. Only the fries
// choice carries a price today; bread and sauces are free.
func SupplementsPrice(config models.CartItemSupplements, frites []models.Supplement) int {
	if config.Frites == "" {
		return 0
	}
	for _, f := range frites {
		if f.Name == config.Frites {
			return f.PriceCents
		}
	}
	return 0
}

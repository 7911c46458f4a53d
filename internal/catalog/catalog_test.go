package catalog

import (
	"testing"

	"storefront/internal/models"
)

func TestAllowsSupplements(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"kebab", true},
		{"burger", true},
		{"chick-n-snack", true},
		{"tres-speciaux", true},
		{"dessert", false},
		{"boisson", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowsSupplements(tt.category); got != tt.want {
			t.Fatalf("AllowsSupplements(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{50, 50},
		{99, 99},
		{100, 99},
	}

	for _, tt := range tests {
		if got := ClampQuantity(tt.in); got != tt.want {
			t.Fatalf("ClampQuantity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	unavailable := false
	products := []models.Product{
		{ID: 1, Name: "Kebab", Category: "kebab"},
		{ID: 2, Name: "Burger", Category: "burger"},
		{ID: 3, Name: "Kebab XL", Category: "kebab", IsAvailable: &unavailable},
		{ID: 4, Name: "Coca", Category: "boisson"},
	}

	kebabs := FilterByCategory(products, "kebab")
	if len(kebabs) != 1 || kebabs[0].ID != 1 {
		t.Fatalf("expected only the available kebab, got %+v", kebabs)
	}

	all := FilterByCategory(products, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 available products, got %d", len(all))
	}
}

func TestSupplementsPriceOnlyFritesCharged(t *testing.T) {
	frites := []models.Supplement{
		{Name: "Petite"},
		{Name: "Moyenne", PriceCents: 500},
		{Name: "Grande", PriceCents: 800},
	}

	tests := []struct {
		name   string
		config models.CartItemSupplements
		want   int
	}{
		{"no fries", models.CartItemSupplements{Pain: "Galette", Sauces: []string{"Blanche"}}, 0},
		{"free fries", models.CartItemSupplements{Frites: "Petite"}, 0},
		{"priced fries", models.CartItemSupplements{Frites: "Moyenne"}, 500},
		{"unknown fries", models.CartItemSupplements{Frites: "Géante"}, 0},
	}

	for _, tt := range tests {
		if got := SupplementsPrice(tt.config, frites); got != tt.want {
			t.Fatalf("%s: SupplementsPrice = %d, want %d", tt.name, got, tt.want)
		}
	}
}

package models

// Store is a physical restaurant returned by the public stores endpoint.
type Store struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CountryID    int    `json:"country_id"`
	CountryCode  string `json:"country_code,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	IsOpen       *bool  `json:"is_open,omitempty"`
	OpeningHours string `json:"opening_hours,omitempty"`
}

type StoresResponse struct {
	Data []Store `json:"data"`
}

// Product is a catalog entry. Prices are integer minor-currency units
// (FCFA has no fractional unit, so price_cents is the displayed amount).
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PriceCents  int    `json:"price_cents"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

// Available treats a missing flag as available, matching the storefront.
func (p Product) Available() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

type ProductsResponse struct {
	Data []Product `json:"data"`
}

// Supplement is one bread, fries or sauce option.
type Supplement struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents,omitempty"`
}

// SupplementsResponse partitions the options into the three kinds the
// configuration flow offers.
type SupplementsResponse struct {
	Pains  []Supplement `json:"pains"`
	Frites []Supplement `json:"frites"`
	Sauces []Supplement `json:"sauces"`
}

// DeliveryZone is a delivery area served by a store, with its flat fee.
type DeliveryZone struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	DeliveryFeeCents int    `json:"delivery_fee_cents"`
}

type DeliveryZonesResponse struct {
	DeliveryZones []DeliveryZone `json:"delivery_zones"`
}

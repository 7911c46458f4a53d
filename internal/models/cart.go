package models

// CartItemSupplements is the supplement configuration chosen for a cart line:
// at most one bread, at most one fries size, any number of sauces. Sauce order
// is kept for display but is not significant when comparing configurations.
type CartItemSupplements struct {
	Pain   string   `json:"pain,omitempty"`
	Frites string   `json:"frites,omitempty"`
	Sauces []string `json:"sauces,omitempty"`
}

// CartItem is one cart line. UnitPrice and SupplementsPrice are snapshots
// taken when the line was created; later catalog changes never touch lines
// already in the cart. TotalPrice is always
// quantity * (unit_price + supplements_price).
type CartItem struct {
	ProductID        int                 `json:"product_id"`
	Name             string              `json:"name"`
	UnitPrice        int                 `json:"unit_price"`
	Quantity         int                 `json:"quantity"`
	Supplements      CartItemSupplements `json:"supplements"`
	SupplementsPrice int                 `json:"supplements_price"`
	TotalPrice       int                 `json:"total_price"`
}

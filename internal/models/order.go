package models

// OrderItem is one line of an outbound order, with the supplement choices
// flattened out of the cart line's configuration.
type OrderItem struct {
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Pain      string   `json:"pain,omitempty"`
	Frites    string   `json:"frites,omitempty"`
	Sauces    []string `json:"sauces,omitempty"`
}

// OrderPayload is the body of POST /public/orders/. CustomerPhone carries the
// country calling-code prefix.
type OrderPayload struct {
	StoreID        int         `json:"store_id"`
	CustomerName   string      `json:"customer_name"`
	CustomerPhone  string      `json:"customer_phone"`
	DeliveryZoneID int         `json:"delivery_zone_id"`
	Note           string      `json:"note,omitempty"`
	Items          []OrderItem `json:"items"`
}

// OrderResponse is the confirmation returned for an accepted order.
type OrderResponse struct {
	ID          int    `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	TotalCents  int    `json:"total_cents"`
	CreatedAt   string `json:"created_at"`
}

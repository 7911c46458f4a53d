package cart

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/storage"
)

// storageKey is the namespace the cart has always persisted under.
const storageKey = "planet-kebab-cart"

type state struct {
	Items []models.CartItem `json:"items"`
}

// Cart is the ordered list of line items the customer has accumulated.
// Every mutation writes through to durable storage, so a reload restores
// the cart as-is. All methods are for single-goroutine use: mutations only
// happen in response to discrete user actions.
type Cart struct {
	store storage.Store
	items []models.CartItem
}

// New restores the cart from storage, starting empty when no usable record
// exists.
func New(store storage.Store) (*Cart, error) {
	c := &Cart{store: store}

	var st state
	ok, err := store.Load(storageKey, &st)
	if err != nil {
		return nil, err
	}
	if ok {
		c.items = st.Items
	}
	return c, nil
}

// Add merges the product into an existing line when one carries the same
// configuration, otherwise appends a new line. A merged line keeps its own
// snapshotted unit and supplement prices; the incoming surcharge is only
// used for a fresh line.
func (c *Cart) Add(product models.Product, quantity int, supplements models.CartItemSupplements, supplementsPrice int) {
	for i := range c.items {
		item := &c.items[i]
		if item.ProductID == product.ID && ConfigsEqual(item.Supplements, supplements) {
			item.Quantity += quantity
			item.TotalPrice = item.Quantity * (item.UnitPrice + item.SupplementsPrice)
			c.persist()
			return
		}
	}

	c.items = append(c.items, models.CartItem{
		ProductID:        product.ID,
		Name:             product.Name,
		UnitPrice:        product.PriceCents,
		Quantity:         quantity,
		Supplements:      supplements,
		SupplementsPrice: supplementsPrice,
		TotalPrice:       quantity * (product.PriceCents + supplementsPrice),
	})
	c.persist()
}

// ChangeQty adjusts a line's quantity by delta. A result of zero or less
// removes the line. An out-of-range index is ignored.
func (c *Cart) ChangeQty(index, delta int) {
	if index < 0 || index >= len(c.items) {
		return
	}

	item := &c.items[index]
	next := item.Quantity + delta
	if next <= 0 {
		c.Remove(index)
		return
	}

	item.Quantity = next
	item.TotalPrice = next * (item.UnitPrice + item.SupplementsPrice)
	c.persist()
}

// Remove deletes the line at index, keeping the rest in order. An
// out-of-range index is ignored.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.persist()
}

// Clear empties the cart. Called after a confirmed order submission.
func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

// ItemsCount sums the quantities across all lines.
func (c *Cart) ItemsCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums the line totals, in minor currency units.
func (c *Cart) Subtotal() int {
	total := 0
	for _, item := range c.items {
		total += item.TotalPrice
	}
	return total
}

// Items returns the lines in insertion order. The slice is a copy.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// persist mirrors the cart to storage. A failed write is logged and the
// in-memory cart stays authoritative, matching how the storefront treats
// its local storage.
func (c *Cart) persist() {
	if err := c.store.Save(storageKey, state{Items: c.items}); err != nil {
		log.Printf("[CART] persist failed: %v", err)
	}
}

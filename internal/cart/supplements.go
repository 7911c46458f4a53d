package cart

import (
	"sort"

	"storefront/internal/models"
)

// ConfigsEqual reports whether two supplement configurations describe the
// same choice: same bread, same fries, and the same sauces as an unordered
// set. Absent choices on both sides count as equal.
func ConfigsEqual(a, b models.CartItemSupplements) bool {
	if a.Pain != b.Pain {
		return false
	}
	if a.Frites != b.Frites {
		return false
	}
	if len(a.Sauces) != len(b.Sauces) {
		return false
	}

	as := append([]string(nil), a.Sauces...)
	bs := append([]string(nil), b.Sauces...)
	sort.Strings(as)
	sort.Strings(bs)

	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

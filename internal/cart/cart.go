package cart

import (
	"errors"

	"github.com/naruemon65/storefront-sync/internal/catalog"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means the cart holds no entry for the given id.
	ErrNotFound = errors.New("cart item not found")
	// ErrConfirmRemoval is returned by ChangeQuantity when the new
	// quantity would drop below 1. The entry is untouched until the
	// caller confirms the removal.
	ErrConfirmRemoval = errors.New("quantity below 1 requires removal confirmation")
)

// Item is one cart entry. Its ID is the id of the product it
// references; name, price and image are denormalized copies taken at
// the time of the last sync.
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    string          `json:"price"`
	Image    []catalog.Image `json:"image"`
	Quantity int             `json:"quantity"`
}

// ItemFromProduct builds the cart entry for a product with quantity 1.
func ItemFromProduct(p catalog.Product) Item {
	return Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	}
}

// Subtotal sums price*quantity over all entries. An entry whose price
// does not parse as a decimal contributes zero instead of failing the
// whole computation.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			continue
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Image is one entry of a product's image list. The first entry is the
// canonical picture; ThumbURL is the fallback used when URL is empty.
type Image struct {
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
}

// Product mirrors the shape stored in the remote `products` collection.
// Price travels as a decimal string on the wire, so it stays a string
// here and is parsed only where math or validation needs it.
type Product struct {
	ID              int      `json:"id,omitempty"`
	Name            string   `json:"name"`
	Image           []Image  `json:"image"`
	Category        string   `json:"category"`
	Price           string   `json:"price"`
	Description     string   `json:"description"`
	DateOfOrder     string   `json:"date_of_order"`
	SelectedOptions []string `json:"selectedOptions"`
	PaymentMethod   string   `json:"paymentMethod"`
}

// AllowedCategories contains the supported product categories.
var AllowedCategories = []string{
	"clothes",
	"grocery",
	"gadgets",
	"beauty products",
	"home decor",
	"others",
}

// AllowedBrands contains the brand tags a product may carry.
var AllowedBrands = []string{"Levis", "H&M", "Roadster"}

// Payment methods accepted on a product.
const (
	PaymentCashOnDelivery = "cash-on-delivery"
	PaymentOnline         = "online"
)

// MaxPrice is the upper bound for a product price.
var MaxPrice = decimal.NewFromInt(1_000_000)

const dateLayout = "2006-01-02"

// Validate checks a product payload and returns all validation errors
// together, keyed by field name. An empty map means the payload is valid.
func Validate(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if !contains(AllowedCategories, p.Category) {
		errs["category"] = "invalid category"
	}
	if price, err := decimal.NewFromString(p.Price); err != nil {
		errs["price"] = "price must be a decimal number"
	} else if price.IsNegative() {
		errs["price"] = "price must be >= 0"
	} else if price.GreaterThan(MaxPrice) {
		errs["price"] = "price must be <= 1000000"
	}
	if p.DateOfOrder != "" {
		d, err := time.Parse(dateLayout, p.DateOfOrder)
		if err != nil {
			errs["date_of_order"] = "date_of_order must be YYYY-MM-DD"
		} else if d.After(time.Now()) {
			errs["date_of_order"] = "date_of_order must not be in the future"
		}
	}
	if len(p.SelectedOptions) == 0 {
		errs["selectedOptions"] = "at least one brand is required"
	} else {
		for _, opt := range p.SelectedOptions {
			if !contains(AllowedBrands, opt) {
				errs["selectedOptions"] = "invalid brand"
				break
			}
		}
	}
	if p.PaymentMethod != PaymentCashOnDelivery && p.PaymentMethod != PaymentOnline {
		errs["paymentMethod"] = "paymentMethod must be cash-on-delivery or online"
	}
	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

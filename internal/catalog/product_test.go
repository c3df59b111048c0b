package catalog

import "testing"

func validProduct() Product {
	return Product{
		Name:            "Denim Shirt",
		Category:        "clothes",
		Price:           "1299.99",
		Description:     "Classic denim shirt",
		DateOfOrder:     "2024-11-02",
		SelectedOptions: []string{"Levis", "Roadster"},
		PaymentMethod:   PaymentCashOnDelivery,
	}
}

func TestValidateAcceptsCompletePayload(t *testing.T) {
	p := validProduct()
	if errs := Validate(&p); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Product)
		field  string
	}{
		{"missing name", func(p *Product) { p.Name = "" }, "name"},
		{"unknown category", func(p *Product) { p.Category = "vehicles" }, "category"},
		{"non-numeric price", func(p *Product) { p.Price = "abc" }, "price"},
		{"negative price", func(p *Product) { p.Price = "-5" }, "price"},
		{"price above bound", func(p *Product) { p.Price = "1000001" }, "price"},
		{"future date", func(p *Product) { p.DateOfOrder = "2999-01-01" }, "date_of_order"},
		{"garbage date", func(p *Product) { p.DateOfOrder = "02/11/2024" }, "date_of_order"},
		{"no brands", func(p *Product) { p.SelectedOptions = nil }, "selectedOptions"},
		{"unknown brand", func(p *Product) { p.SelectedOptions = []string{"Zara"} }, "selectedOptions"},
		{"bad payment method", func(p *Product) { p.PaymentMethod = "cheque" }, "paymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			errs := Validate(&p)
			if len(errs) == 0 {
				t.Fatalf("expected a validation error for %s", tt.field)
			}
			if _, ok := errs[tt.field]; !ok {
				t.Fatalf("expected error keyed by %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	p := Product{}
	errs := Validate(&p)
	for _, field := range []string{"name", "category", "price", "selectedOptions", "paymentMethod"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected %q among validation errors, got %v", field, errs)
		}
	}
}

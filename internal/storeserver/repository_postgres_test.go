package storeserver

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/naruemon65/storefront-sync/internal/cart"
)

func TestPostgresListProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "image", "category", "price", "description", "date_of_order", "selected_options", "payment_method"}).
		AddRow(1, "Denim Shirt", []byte(`[{"url":"/a.jpg","thumbUrl":"/a-t.jpg"}]`), "clothes", "1299", "d", "2024-11-02", []byte(`{Levis,Roadster}`), "online").
		AddRow(2, "Vase", []byte(`[]`), "home decor", "549.50", "d2", "2025-01-15", []byte(`{"H&M"}`), "cash-on-delivery")
	mock.ExpectQuery("SELECT id, name, image").WillReturnRows(rows)

	products := repo.ListProducts()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Denim Shirt" {
		t.Fatalf("unexpected product name %q", products[0].Name)
	}
	if len(products[0].Image) != 1 || products[0].Image[0].URL != "/a.jpg" {
		t.Fatalf("image jsonb not decoded: %+v", products[0].Image)
	}
	if len(products[0].SelectedOptions) != 2 {
		t.Fatalf("brand array not decoded: %+v", products[0].SelectedOptions)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateProductReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO products").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateProduct(randomProduct())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateCartEntryNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE cart_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateCartEntry(9, cart.Item{Quantity: 2}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for zero rows affected, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDeleteCartEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCartEntry(3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

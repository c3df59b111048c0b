package storeserver

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
)

// PostgresRepository persists both collections in Postgres. Image
// lists are stored as jsonb, brand tags as a text array.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, image, category, price, description, date_of_order, selected_options, payment_method
		FROM products
		ORDER BY id
	`
	getProductQuery = `
		SELECT id, name, image, category, price, description, date_of_order, selected_options, payment_method
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, image, category, price, description, date_of_order, selected_options, payment_method)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			image = $2,
			category = $3,
			price = $4,
			description = $5,
			date_of_order = $6,
			selected_options = $7,
			payment_method = $8
		WHERE id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`

	listCartQuery   = `SELECT id, name, price, image, quantity FROM cart_items ORDER BY added_at, id`
	insertCartQuery = `INSERT INTO cart_items (id, name, price, image, quantity) VALUES ($1,$2,$3,$4,$5)`
	updateCartQuery = `UPDATE cart_items SET name = $1, price = $2, image = $3, quantity = $4 WHERE id = $5`
	deleteCartQuery = `DELETE FROM cart_items WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the two collection tables when missing.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		image JSONB NOT NULL DEFAULT '[]',
		category TEXT,
		price TEXT,
		description TEXT,
		date_of_order TEXT,
		selected_options TEXT[] NOT NULL DEFAULT '{}',
		payment_method TEXT
	)`); err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cart_items (
		id INT PRIMARY KEY,
		name TEXT,
		price TEXT,
		image JSONB NOT NULL DEFAULT '[]',
		quantity INT NOT NULL,
		added_at TIMESTAMP NOT NULL DEFAULT now()
	)`); err != nil {
		return err
	}
	return nil
}

func (r *PostgresRepository) ListProducts() []catalog.Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []catalog.Product{}
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetProduct(id int) (catalog.Product, error) {
	row := r.db.QueryRow(getProductQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return catalog.Product{}, ErrNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) CreateProduct(p catalog.Product) (catalog.Product, error) {
	img, err := json.Marshal(p.Image)
	if err != nil {
		return catalog.Product{}, err
	}
	var id int
	err = r.db.QueryRow(
		insertProductQuery,
		p.Name,
		img,
		p.Category,
		p.Price,
		p.Description,
		p.DateOfOrder,
		pq.Array(p.SelectedOptions),
		p.PaymentMethod,
	).Scan(&id)
	if err != nil {
		return catalog.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) UpdateProduct(id int, p catalog.Product) (catalog.Product, error) {
	img, err := json.Marshal(p.Image)
	if err != nil {
		return catalog.Product{}, err
	}
	res, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		img,
		p.Category,
		p.Price,
		p.Description,
		p.DateOfOrder,
		pq.Array(p.SelectedOptions),
		p.PaymentMethod,
		id,
	)
	if err != nil {
		return catalog.Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalog.Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) DeleteProduct(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListCart() []cart.Item {
	rows, err := r.db.Query(listCartQuery)
	if err != nil {
		return []cart.Item{}
	}
	defer rows.Close()

	out := make([]cart.Item, 0)
	for rows.Next() {
		var (
			it  cart.Item
			img []byte
		)
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &img, &it.Quantity); err != nil {
			continue
		}
		if len(img) > 0 {
			_ = json.Unmarshal(img, &it.Image)
		}
		out = append(out, it)
	}
	return out
}

func (r *PostgresRepository) CreateCartEntry(it cart.Item) (cart.Item, error) {
	img, err := json.Marshal(it.Image)
	if err != nil {
		return cart.Item{}, err
	}
	if _, err := r.db.Exec(insertCartQuery, it.ID, it.Name, it.Price, img, it.Quantity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return cart.Item{}, ErrDuplicate
		}
		return cart.Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) UpdateCartEntry(id int, it cart.Item) (cart.Item, error) {
	img, err := json.Marshal(it.Image)
	if err != nil {
		return cart.Item{}, err
	}
	res, err := r.db.Exec(updateCartQuery, it.Name, it.Price, img, it.Quantity, id)
	if err != nil {
		return cart.Item{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return cart.Item{}, ErrNotFound
	}
	it.ID = id
	return it, nil
}

func (r *PostgresRepository) DeleteCartEntry(id int) error {
	res, err := r.db.Exec(deleteCartQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset truncates both tables and inserts the provided records.
func (r *PostgresRepository) Reset(products []catalog.Product, items []cart.Item) error {
	if _, err := r.db.Exec(`TRUNCATE products RESTART IDENTITY`); err != nil {
		return err
	}
	if _, err := r.db.Exec(`TRUNCATE cart_items`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := r.CreateProduct(p); err != nil {
			return err
		}
	}
	for _, it := range items {
		if _, err := r.CreateCartEntry(it); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var (
		p    catalog.Product
		img  []byte
		opts pq.StringArray
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&img,
		&p.Category,
		&p.Price,
		&p.Description,
		&p.DateOfOrder,
		&opts,
		&p.PaymentMethod,
	)
	if err != nil {
		return catalog.Product{}, err
	}
	if len(img) > 0 {
		_ = json.Unmarshal(img, &p.Image)
	}
	p.SelectedOptions = opts
	return p, nil
}

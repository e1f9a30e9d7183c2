package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"formgrid/internal/domain"
)

// Store persists products and their variant sub-records in SQLite
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. Foreign keys are enabled
// through the DSN so every pooled connection enforces the variant cascade.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			sku TEXT NOT NULL,
			price REAL NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0,
			in_stock INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS variants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			sku_suffix TEXT NOT NULL DEFAULT '',
			stock INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_variants_product ON variants(product_id, position);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// filterClause builds the WHERE clause for a changelist filter. The filter
// is a plain substring match on name or SKU.
func filterClause(filter string) (string, []interface{}) {
	if strings.TrimSpace(filter) == "" {
		return "", nil
	}
	pattern := "%" + strings.TrimSpace(filter) + "%"
	return " WHERE name LIKE ? OR sku LIKE ?", []interface{}{pattern, pattern}
}

// List returns one changelist page of products matching the filter
func (s *Store) List(filter string, limit, offset int) ([]domain.Product, error) {
	where, args := filterClause(filter)
	query := `SELECT id, name, sku, price, stock, in_stock FROM products` + where +
		` ORDER BY name, id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.InStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Count returns the number of products matching the filter across all pages
func (s *Store) Count(filter string) (int, error) {
	where, args := filterClause(filter)
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// DeleteByID deletes the given products. This is the checked-subset scope
// of the delete action.
func (s *Store) DeleteByID(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `DELETE FROM products WHERE id IN (` + placeholders(len(ids)) + `)`
	res, err := s.db.Exec(query, idArgs(ids)...)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return res.RowsAffected()
}

// DeleteMatching deletes every product matching the filter, regardless of
// which page it is on. This is the across-pages scope of the delete action.
func (s *Store) DeleteMatching(filter string) (int64, error) {
	where, args := filterClause(filter)
	res, err := s.db.Exec(`DELETE FROM products`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete matching products: %w", err)
	}
	return res.RowsAffected()
}

// SetStockByID sets the in-stock flag on the given products
func (s *Store) SetStockByID(ids []int64, inStock bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE products SET in_stock = ? WHERE id IN (` + placeholders(len(ids)) + `)`
	args := append([]interface{}{inStock}, idArgs(ids)...)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("update stock: %w", err)
	}
	return res.RowsAffected()
}

// SetStockMatching sets the in-stock flag on every product matching the filter
func (s *Store) SetStockMatching(filter string, inStock bool) (int64, error) {
	where, args := filterClause(filter)
	args = append([]interface{}{inStock}, args...)
	res, err := s.db.Exec(`UPDATE products SET in_stock = ?`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("update stock matching: %w", err)
	}
	return res.RowsAffected()
}

// GetProduct loads a single product
func (s *Store) GetProduct(id int64) (domain.Product, error) {
	var p domain.Product
	err := s.db.QueryRow(`SELECT id, name, sku, price, stock, in_stock FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.InStock)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// VariantsFor loads a product's variants in stored block order
func (s *Store) VariantsFor(productID int64) ([]domain.Variant, error) {
	rows, err := s.db.Query(
		`SELECT id, product_id, position, label, sku_suffix, stock FROM variants
		 WHERE product_id = ? ORDER BY position`, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var variants []domain.Variant
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Position, &v.Label, &v.SKUSuffix, &v.Stock); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// SaveProduct writes a product and replaces its variant rows. Positions are
// rewritten 0..n-1 in the order given, matching the formset's contiguous
// index invariant.
func (s *Store) SaveProduct(p domain.Product, variants []domain.Variant) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	id := p.ID
	if id == 0 {
		res, err := tx.Exec(
			`INSERT INTO products (name, sku, price, stock, in_stock) VALUES (?, ?, ?, ?, ?)`,
			p.Name, p.SKU, p.Price, p.Stock, p.InStock)
		if err != nil {
			return 0, fmt.Errorf("insert product: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert product id: %w", err)
		}
	} else {
		if _, err := tx.Exec(
			`UPDATE products SET name = ?, sku = ?, price = ?, stock = ?, in_stock = ? WHERE id = ?`,
			p.Name, p.SKU, p.Price, p.Stock, p.InStock, id); err != nil {
			return 0, fmt.Errorf("update product: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM variants WHERE product_id = ?`, id); err != nil {
		return 0, fmt.Errorf("clear variants: %w", err)
	}
	for i, v := range variants {
		if _, err := tx.Exec(
			`INSERT INTO variants (product_id, position, label, sku_suffix, stock) VALUES (?, ?, ?, ?, ?)`,
			id, i, v.Label, v.SKUSuffix, v.Stock); err != nil {
			return 0, fmt.Errorf("insert variant %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return id, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

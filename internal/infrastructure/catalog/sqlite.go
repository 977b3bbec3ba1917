package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/paniermalin/backend/internal/domain"
)

// Query result caps; the matcher applies its own tier caps on top.
const (
	textQueryLimit     = 25
	categoryQueryLimit = 25
	wordQueryLimit     = 25
)

// Store is a sqlite-backed, read-mostly product catalog. The engine only
// reads it; population (scraping, imports) happens out of process through
// Upsert.
type Store struct {
	db              *sql.DB
	preferredSource string
}

// Open opens (or creates) the catalog database at path and ensures the
// schema exists. preferredSource ranks provenance when ordering results.
func Open(path, preferredSource string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, preferredSource: preferredSource}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  label TEXT,
  brand TEXT,
  price_chf REAL NOT NULL CHECK (price_chf >= 0),
  unit TEXT,
  category TEXT,
  source TEXT NOT NULL,
  image_url TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`
	_, err := s.db.Exec(schema)
	return err
}

// FindByTextContains returns products whose name or label contains any of
// the terms, case-insensitive, ordered by provenance preference then
// ascending price.
func (s *Store) FindByTextContains(ctx context.Context, terms []string, maxPrice float64) ([]domain.CatalogProduct, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	var clauses []string
	var args []interface{}
	for _, term := range terms {
		clauses = append(clauses, "(instr(lower(name), ?) > 0 OR instr(lower(coalesce(label, '')), ?) > 0)")
		lower := strings.ToLower(term)
		args = append(args, lower, lower)
	}

	query := "SELECT id, name, label, brand, price_chf, unit, category, source, image_url FROM products WHERE (" +
		strings.Join(clauses, " OR ") + ")"
	if maxPrice > 0 {
		query += " AND price_chf <= ?"
		args = append(args, maxPrice)
	}
	query += " ORDER BY CASE WHEN source = ? THEN 0 ELSE 1 END, price_chf ASC LIMIT ?"
	args = append(args, s.preferredSource, textQueryLimit)

	return s.queryProducts(ctx, query, args...)
}

// FindByCategory returns products with an exact category match, cheapest
// first.
func (s *Store) FindByCategory(ctx context.Context, category string, maxPrice float64) ([]domain.CatalogProduct, error) {
	query := "SELECT id, name, label, brand, price_chf, unit, category, source, image_url FROM products WHERE category = ?"
	args := []interface{}{category}
	if maxPrice > 0 {
		query += " AND price_chf <= ?"
		args = append(args, maxPrice)
	}
	query += " ORDER BY price_chf ASC LIMIT ?"
	args = append(args, categoryQueryLimit)

	return s.queryProducts(ctx, query, args...)
}

// FindByWords returns products whose name contains any of the words,
// ordered by ascending price.
func (s *Store) FindByWords(ctx context.Context, words []string, maxPrice float64) ([]domain.CatalogProduct, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var clauses []string
	var args []interface{}
	for _, word := range words {
		clauses = append(clauses, "instr(lower(name), ?) > 0")
		args = append(args, strings.ToLower(word))
	}

	query := "SELECT id, name, label, brand, price_chf, unit, category, source, image_url FROM products WHERE (" +
		strings.Join(clauses, " OR ") + ")"
	if maxPrice > 0 {
		query += " AND price_chf <= ?"
		args = append(args, maxPrice)
	}
	query += " ORDER BY price_chf ASC LIMIT ?"
	args = append(args, wordQueryLimit)

	return s.queryProducts(ctx, query, args...)
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.CatalogProduct, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var products []domain.CatalogProduct
	for rows.Next() {
		var p domain.CatalogProduct
		var label, brand, unit, category, imageURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &label, &brand, &p.PriceCHF, &unit, &category, &p.Source, &imageURL); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		p.Label = label.String
		p.Brand = brand.String
		p.Unit = unit.String
		p.Category = category.String
		p.ImageURL = imageURL.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return products, nil
}

// Upsert inserts or replaces products. Used by the out-of-process
// population tooling and by seeding.
func (s *Store) Upsert(ctx context.Context, products []domain.CatalogProduct) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO products (id, name, label, brand, price_chf, unit, category, source, image_url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Label, p.Brand, p.PriceCHF, p.Unit, p.Category, p.Source, p.ImageURL); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count returns the number of products in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return count, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// ErrNotFound is returned when no product matches a lookup.
var ErrNotFound = errors.New("product not found")

// Store holds exported products in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and ensures the
// products table exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			name,
			slug TEXT NOT NULL,
			category,
			subcategory,
			brand,
			model,
			width,
			height,
			diameter,
			load_index,
			price,
			description,
			seo_keywords,
			images TEXT NOT NULL,
			specs TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Replace swaps the table contents for records in one transaction.
// Value columns are untyped so numbers and text keep their kind.
func (s *Store) Replace(ctx context.Context, records []types.ProductRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (id, name, slug, category, subcategory, brand, model,
			width, height, diameter, load_index, price, description, seo_keywords, images, specs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		images, err := json.Marshal(r.Images)
		if err != nil {
			return fmt.Errorf("encoding images of product %d: %w", r.ID, err)
		}
		specs, err := json.Marshal(r.Specs)
		if err != nil {
			return fmt.Errorf("encoding specs of product %d: %w", r.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			r.ID, r.Name, r.Slug, r.Category, r.Subcategory, r.Brand, r.Model,
			r.Width, r.Height, r.Diameter, r.LoadIndex, r.Price, r.Description, r.SEOKeywords,
			string(images), string(specs),
		)
		if err != nil {
			return fmt.Errorf("inserting product %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored products.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

// BySlug returns the product with the lowest id among those with slug.
func (s *Store) BySlug(ctx context.Context, slug string) (types.ProductRecord, error) {
	var r types.ProductRecord
	var images, specs string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug, category, subcategory, brand, model,
			width, height, diameter, load_index, price, description, seo_keywords, images, specs
		 FROM products WHERE slug = ? ORDER BY id LIMIT 1`, slug,
	).Scan(
		&r.ID, &r.Name, &r.Slug, &r.Category, &r.Subcategory, &r.Brand, &r.Model,
		&r.Width, &r.Height, &r.Diameter, &r.LoadIndex, &r.Price, &r.Description, &r.SEOKeywords,
		&images, &specs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ProductRecord{}, fmt.Errorf("slug %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return types.ProductRecord{}, fmt.Errorf("querying slug %q: %w", slug, err)
	}

	if err := json.Unmarshal([]byte(images), &r.Images); err != nil {
		return types.ProductRecord{}, fmt.Errorf("decoding images of product %d: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(specs), &r.Specs); err != nil {
		return types.ProductRecord{}, fmt.Errorf("decoding specs of product %d: %w", r.ID, err)
	}
	return r, nil
}

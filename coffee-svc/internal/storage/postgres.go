package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"coffeehouse/coffee-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS coffees (
			id INTEGER PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			image_url TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0)
		)`,
		"CREATE INDEX IF NOT EXISTS coffees_category_idx ON coffees (category)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// Seed inserts items that are not present yet; existing rows keep their prices.
func (r *PostgresRepository) Seed(items []domain.CatalogItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		if _, err := tx.Exec(`
			INSERT INTO coffees (id, category, name, image_url, price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, item.ID, string(item.Category), item.Name, item.Image, item.Price); err != nil {
			return fmt.Errorf("seed coffee %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT category
		FROM coffees
		GROUP BY category
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			continue
		}
		categories = append(categories, domain.Category(category))
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) ListItems(category domain.Category) ([]domain.CatalogItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, category, name, COALESCE(image_url, ''), price
		FROM coffees
		WHERE category = $1
		ORDER BY id`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CatalogItem{}
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Name, &item.Image, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(id int) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.DB.QueryRow(`
		SELECT id, category, name, COALESCE(image_url, ''), price
		FROM coffees
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Category, &item.Name, &item.Image, &item.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"coffeehouse/checkout-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkout_orders (
			id SERIAL PRIMARY KEY,
			session_id TEXT,
			name TEXT NOT NULL,
			size TEXT,
			milk TEXT,
			topping TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price > 0),
			status TEXT NOT NULL DEFAULT 'received',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS checkout_orders_session_idx ON checkout_orders (session_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO checkout_orders (session_id, name, size, milk, topping, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, order.SessionID, order.Name, order.Size, order.Milk, order.Topping, order.Price, order.Status).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE checkout_orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

const orderColumns = `id, COALESCE(session_id, ''), name, COALESCE(size, ''), COALESCE(milk, ''),
	COALESCE(topping, ''), price, status, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.SessionID, &order.Name, &order.Size, &order.Milk,
		&order.Topping, &order.Price, &order.Status, &order.CreatedAt)
	return order, err
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM checkout_orders WHERE id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM checkout_orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRow("SELECT qr_code FROM checkout_orders WHERE id = $1", orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return qrCode, nil
}

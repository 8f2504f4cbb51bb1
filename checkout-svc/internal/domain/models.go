package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("order not found")

const (
	OrderSubmittedType = "order_submitted"

	StatusReceived = "received"
)

// Drink mirrors the parameters coffee-svc hands over on an accepted submit.
type Drink struct {
	Name    string  `json:"name"`
	Size    string  `json:"size,omitempty"`
	Milk    string  `json:"milk,omitempty"`
	Topping string  `json:"topping,omitempty"`
	Price   float64 `json:"price"`
}

type OrderMessage struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Order     Drink     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

type Order struct {
	ID        int    `json:"id"`
	SessionID string `json:"session_id,omitempty"`
	Drink
	Status    string    `json:"status"`
	QRCode    string    `json:"qr_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	PeriodToday = "today"
	PeriodAll   = "all"
)

type DrinkPopularity struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("coffee not found")

type Category string

const (
	CategoryPopular  Category = "popular"
	CategoryLatte    Category = "latte"
	CategoryEspresso Category = "espresso"
)

type CatalogItem struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Price    float64  `json:"price"`
}

// Selection is the in-progress choice for one catalog item. Nil options are unset.
type Selection struct {
	Size       *SizeOption    `json:"size,omitempty"`
	Milk       *MilkOption    `json:"milk,omitempty"`
	Topping    *ToppingOption `json:"topping,omitempty"`
	TotalPrice float64        `json:"total_price"`
}

// OrderParameters is handed to checkout once per accepted submit.
// Empty Size, Milk or Topping means the option was not chosen.
type OrderParameters struct {
	Name    string  `json:"name"`
	Size    string  `json:"size,omitempty"`
	Milk    string  `json:"milk,omitempty"`
	Topping string  `json:"topping,omitempty"`
	Price   float64 `json:"price"`
}

type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

type Notification struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

const OrderSubmittedType = "order_submitted"

type OrderMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	Order     OrderParameters `json:"order"`
	Timestamp time.Time       `json:"timestamp"`
}

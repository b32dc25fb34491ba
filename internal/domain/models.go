package domain

import "time"

type Dish struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	OriginalQuantity  int     `json:"original_quantity"`
}

// DishUpdate carries a partial edit: nil fields are left untouched.
type DishUpdate struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	AvailableQuantity *int     `json:"available_quantity"`
	OriginalQuantity  *int     `json:"original_quantity"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderItem snapshots name and price at placement time, so later catalog
// edits or deletions never change a placed order.
type OrderItem struct {
	DishID   string  `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Selection is what the customer picks on the ordering screen: a dish and
// how many of it.
type Selection struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

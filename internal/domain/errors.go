package domain

import "errors"

var (
	ErrDishNotFound      = errors.New("dish not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("not enough stock for dish")
)

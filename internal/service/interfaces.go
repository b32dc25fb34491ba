package service

import (
	"context"

	"github.com/piganiec/hardbistro-app/internal/domain"
)

type CatalogServiceInterface interface {
	Create(dish *domain.Dish) error
	List() ([]domain.Dish, error)
	Get(id string) (*domain.Dish, error)
	Update(id string, updates domain.DishUpdate) (*domain.Dish, error)
	Delete(id string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, customerName, phone, address string, selections []domain.Selection) (*domain.Order, error)
	Quote(selections []domain.Selection) (float64, error)
	Get(orderID string) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(orderID string) ([]byte, error)
}

type AdminServiceInterface interface {
	Login(ctx context.Context, password string) (string, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) bool
}

type CatalogRepository interface {
	InsertDish(dish *domain.Dish) error
	ListDishes() ([]domain.Dish, error)
	GetDish(id string) (*domain.Dish, error)
	UpdateDish(id string, updates domain.DishUpdate) (*domain.Dish, error)
	DeleteDish(id string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(customerName, phone, address string, selections []domain.Selection) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	GetOrder(orderID string) (*domain.Order, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

// Authenticator checks an admin credential, so a real credential backend can
// replace the shared password without touching the HTTP layer.
type Authenticator interface {
	Authenticate(password string) bool
}

type SessionStore interface {
	Set(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

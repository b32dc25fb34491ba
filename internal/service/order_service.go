package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piganiec/hardbistro-app/internal/domain"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrMissingContact  = errors.New("customer name, phone and address are required")
	ErrInvalidQuantity = errors.New("item quantity must be a positive integer")
)

type OrderService struct {
	orders    OrderRepository
	catalog   CatalogRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, catalog CatalogRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Place validates the submission, appends the order to the journal and
// decrements catalog availability. The journal append and the decrements
// happen in one repository operation, so a failed availability check leaves
// no trace of the attempt.
func (s *OrderService) Place(ctx context.Context, customerName, phone, address string, selections []domain.Selection) (*domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if customerName == "" || phone == "" || address == "" {
		return nil, ErrMissingContact
	}

	picked, err := nonzeroSelections(selections)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, ErrEmptyOrder
	}

	order, err := s.orders.CreateOrder(customerName, phone, address, picked)
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
			Type:      "order_placed",
			OrderID:   order.ID,
			Total:     order.Total,
			ItemCount: len(order.Items),
			Timestamp: time.Now(),
		})
	}

	return order, nil
}

// Quote computes the running total the ordering screen shows before
// submission. It mutates nothing.
func (s *OrderService) Quote(selections []domain.Selection) (float64, error) {
	picked, err := nonzeroSelections(selections)
	if err != nil {
		return 0, err
	}

	var total float64
	claimed := make(map[string]int)
	for _, sel := range picked {
		dish, err := s.catalog.GetDish(sel.DishID)
		if err != nil {
			return 0, err
		}
		// Repeated selections of one dish count against availability together,
		// matching how placement treats them.
		if claimed[sel.DishID]+sel.Quantity > dish.AvailableQuantity {
			return 0, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, dish.Name)
		}
		claimed[sel.DishID] += sel.Quantity
		total += float64(sel.Quantity) * dish.Price
	}
	return total, nil
}

func (s *OrderService) Get(orderID string) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) GetQRCode(orderID string) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func nonzeroSelections(selections []domain.Selection) ([]domain.Selection, error) {
	var picked []domain.Selection
	for _, sel := range selections {
		if sel.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if sel.Quantity == 0 {
			continue
		}
		picked = append(picked, sel)
	}
	return picked, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)

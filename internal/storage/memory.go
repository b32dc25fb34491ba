package storage

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/piganiec/hardbistro-app/internal/domain"
)

// MemoryStore holds the whole application state in process memory: the
// catalog, the append-only order journal and the per-order QR codes. A
// restart discards everything.
type MemoryStore struct {
	mu       sync.Mutex
	dishes   []domain.Dish
	orders   []domain.Order
	qrCodes  map[string][]byte
	dishSeq  int
	orderSeq int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{qrCodes: make(map[string][]byte)}
}

// Seed loads an initial menu, assigning ids the same way InsertDish does.
func (s *MemoryStore) Seed(dishes []domain.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dish := range dishes {
		s.dishSeq++
		dish.ID = strconv.Itoa(s.dishSeq)
		s.dishes = append(s.dishes, dish)
	}
}

func (s *MemoryStore) InsertDish(dish *domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishSeq++
	dish.ID = strconv.Itoa(s.dishSeq)
	s.dishes = append(s.dishes, *dish)
	return nil
}

func (s *MemoryStore) ListDishes() ([]domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dishes := make([]domain.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	return dishes, nil
}

func (s *MemoryStore) GetDish(id string) (*domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dish := range s.dishes {
		if dish.ID == id {
			found := dish
			return &found, nil
		}
	}
	return nil, domain.ErrDishNotFound
}

func (s *MemoryStore) UpdateDish(id string, updates domain.DishUpdate) (*domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dishes {
		if s.dishes[i].ID != id {
			continue
		}
		if updates.Name != nil {
			s.dishes[i].Name = *updates.Name
		}
		if updates.Description != nil {
			s.dishes[i].Description = *updates.Description
		}
		if updates.Price != nil {
			s.dishes[i].Price = *updates.Price
		}
		if updates.AvailableQuantity != nil {
			s.dishes[i].AvailableQuantity = *updates.AvailableQuantity
		}
		if updates.OriginalQuantity != nil {
			s.dishes[i].OriginalQuantity = *updates.OriginalQuantity
		}
		updated := s.dishes[i]
		return &updated, nil
	}
	return nil, domain.ErrDishNotFound
}

func (s *MemoryStore) DeleteDish(id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dishes {
		if s.dishes[i].ID == id {
			s.dishes = append(s.dishes[:i], s.dishes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// CreateOrder snapshots the selected dishes, computes the total, appends the
// order and decrements availability in one critical section. Availability is
// checked for every selection before anything is touched, so a rejected
// order leaves the catalog and the journal exactly as they were.
func (s *MemoryStore) CreateOrder(customerName, phone, address string, selections []domain.Selection) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.OrderItem, 0, len(selections))
	indexes := make([]int, 0, len(selections))
	pending := make(map[int]int)
	var total float64

	for _, sel := range selections {
		i := s.indexOfDish(sel.DishID)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrDishNotFound, sel.DishID)
		}
		dish := s.dishes[i]
		// Count quantities already claimed by earlier selections of the same
		// dish, so a repeated dish id cannot drive availability below zero.
		if pending[i]+sel.Quantity > dish.AvailableQuantity {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, dish.Name)
		}
		pending[i] += sel.Quantity
		items = append(items, domain.OrderItem{
			DishID:   dish.ID,
			DishName: dish.Name,
			Quantity: sel.Quantity,
			Price:    dish.Price,
		})
		indexes = append(indexes, i)
		total += float64(sel.Quantity) * dish.Price
	}

	for n, i := range indexes {
		s.dishes[i].AvailableQuantity -= items[n].Quantity
	}

	s.orderSeq++
	order := domain.Order{
		ID:           strconv.Itoa(s.orderSeq),
		CustomerName: customerName,
		Phone:        phone,
		Address:      address,
		Items:        items,
		Total:        total,
		CreatedAt:    time.Now(),
	}
	s.orders = append(s.orders, order)

	placed := order
	placed.Items = copyItems(order.Items)
	return &placed, nil
}

func (s *MemoryStore) ListOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = order
		orders[i].Items = copyItems(order.Items)
	}
	return orders, nil
}

func (s *MemoryStore) GetOrder(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			found := order
			found.Items = copyItems(order.Items)
			return &found, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *MemoryStore) SaveQRCode(orderID string, qr []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCodes[orderID] = qr
	return nil
}

func (s *MemoryStore) GetQRCode(orderID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOfOrder(orderID) < 0 {
		return nil, domain.ErrOrderNotFound
	}
	return s.qrCodes[orderID], nil
}

func (s *MemoryStore) indexOfDish(id string) int {
	for i := range s.dishes {
		if s.dishes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) indexOfOrder(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func copyItems(items []domain.OrderItem) []domain.OrderItem {
	copied := make([]domain.OrderItem, len(items))
	copy(copied, items)
	return copied
}

// DefaultMenu is the HardBistro starting menu served by a fresh process.
func DefaultMenu() []domain.Dish {
	return []domain.Dish{
		{
			Name:              "Sałatka Cezar",
			Description:       "Klasyczna sałatka Cezar z kurczakiem, parmezanem i grzankami",
			Price:             20.0,
			AvailableQuantity: 50,
			OriginalQuantity:  50,
		},
		{
			Name:              "Zupa dnia - Żurek",
			Description:       "Tradycyjny żurek z kiełbasą i jajkiem",
			Price:             5.0,
			AvailableQuantity: 30,
			OriginalQuantity:  30,
		},
		{
			Name:              "Kotlet schabowy z ziemniakami",
			Description:       "Tradycyjny kotlet schabowy z gotowanymi ziemniakami i surówką",
			Price:             18.5,
			AvailableQuantity: 15,
			OriginalQuantity:  15,
		},
	}
}

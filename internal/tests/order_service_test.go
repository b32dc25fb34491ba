package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/piganiec/hardbistro-app/internal/domain"
	"github.com/piganiec/hardbistro-app/internal/mocks"
	"github.com/piganiec/hardbistro-app/internal/service"
	"github.com/piganiec/hardbistro-app/internal/storage"
)

func newOrdering() (*storage.MemoryStore, *service.CatalogService, *service.OrderService) {
	store := newSeededStore()
	return store, service.NewCatalogService(store), service.NewOrderService(store, store, nil, nil)
}

func TestOrderService_Place(t *testing.T) {
	store, _, svc := newOrdering()

	order, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1",
		[]domain.Selection{{DishID: "1", Quantity: 3}})

	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, "Jan Kowalski", order.CustomerName)
	assert.Equal(t, 60.0, order.Total)
	assert.Equal(t, []domain.OrderItem{
		{DishID: "1", DishName: "Sałatka Cezar", Quantity: 3, Price: 20.0},
	}, order.Items)

	dish, _ := store.GetDish("1")
	assert.Equal(t, 47, dish.AvailableQuantity)
	assert.Equal(t, 50, dish.OriginalQuantity)

	// other dishes are untouched
	soup, _ := store.GetDish("2")
	assert.Equal(t, 30, soup.AvailableQuantity)
	cutlet, _ := store.GetDish("3")
	assert.Equal(t, 15, cutlet.AvailableQuantity)

	orders, _ := svc.List()
	assert.Len(t, orders, 1)
}

func TestOrderService_PlaceTrimsContactFields(t *testing.T) {
	_, _, svc := newOrdering()

	order, err := svc.Place(context.Background(), "  Jan Kowalski  ", " +48123456789 ", " ul. X 1 ",
		[]domain.Selection{{DishID: "2", Quantity: 1}})

	assert.NoError(t, err)
	assert.Equal(t, "Jan Kowalski", order.CustomerName)
	assert.Equal(t, "+48123456789", order.Phone)
	assert.Equal(t, "ul. X 1", order.Address)
}

func TestOrderService_PlaceValidation(t *testing.T) {
	tests := []struct {
		name       string
		customer   string
		phone      string
		address    string
		selections []domain.Selection
		wantErr    error
	}{
		{
			name:     "no items",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: nil,
			wantErr:    service.ErrEmptyOrder,
		},
		{
			name:     "all-zero quantities",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: 0}, {DishID: "2", Quantity: 0}},
			wantErr:    service.ErrEmptyOrder,
		},
		{
			name:     "negative quantity",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: -1}},
			wantErr:    service.ErrInvalidQuantity,
		},
		{
			name:     "empty customer name",
			customer: "", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: 1}},
			wantErr:    service.ErrMissingContact,
		},
		{
			name:     "whitespace-only phone",
			customer: "Jan", phone: "   ", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: 1}},
			wantErr:    service.ErrMissingContact,
		},
		{
			name:     "whitespace-only address",
			customer: "Jan", phone: "123", address: "\t ",
			selections: []domain.Selection{{DishID: "1", Quantity: 1}},
			wantErr:    service.ErrMissingContact,
		},
		{
			name:     "unknown dish",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "999", Quantity: 1}},
			wantErr:    domain.ErrDishNotFound,
		},
		{
			name:     "quantity above availability",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: 51}},
			wantErr:    domain.ErrInsufficientStock,
		},
		{
			name:     "repeated dish above combined availability",
			customer: "Jan", phone: "123", address: "ul. X 1",
			selections: []domain.Selection{{DishID: "1", Quantity: 30}, {DishID: "1", Quantity: 30}},
			wantErr:    domain.ErrInsufficientStock,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store, _, svc := newOrdering()

			_, err := svc.Place(context.Background(), testCase.customer, testCase.phone, testCase.address, testCase.selections)

			assert.ErrorIs(t, err, testCase.wantErr)

			// a rejected order changes nothing
			orders, _ := svc.List()
			assert.Empty(t, orders)
			dish, _ := store.GetDish("1")
			assert.Equal(t, 50, dish.AvailableQuantity)
		})
	}
}

func TestOrderService_SnapshotSurvivesCatalogEdits(t *testing.T) {
	_, catalog, svc := newOrdering()

	first, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1",
		[]domain.Selection{{DishID: "1", Quantity: 3}})
	assert.NoError(t, err)
	assert.Equal(t, 60.0, first.Total)

	newPrice := 25.50
	_, err = catalog.Update("1", domain.DishUpdate{Price: &newPrice})
	assert.NoError(t, err)

	second, err := svc.Place(context.Background(), "Anna Nowak", "+48987654321", "ul. Y 2",
		[]domain.Selection{{DishID: "1", Quantity: 1}})
	assert.NoError(t, err)
	assert.Equal(t, 25.50, second.Total)
	assert.Equal(t, 25.50, second.Items[0].Price)

	// the earlier order still carries the price it was placed at
	stored, err := svc.Get(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, stored.Items[0].Price)
	assert.Equal(t, 60.0, stored.Total)
}

func TestOrderService_SnapshotSurvivesDishDeletion(t *testing.T) {
	_, catalog, svc := newOrdering()

	order, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1",
		[]domain.Selection{{DishID: "1", Quantity: 2}})
	assert.NoError(t, err)

	assert.NoError(t, catalog.Delete("1"))

	stored, err := svc.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Sałatka Cezar", stored.Items[0].DishName)
	assert.Equal(t, 20.0, stored.Items[0].Price)

	// but new orders for the deleted dish are rejected
	_, err = svc.Place(context.Background(), "Anna Nowak", "+48987654321", "ul. Y 2",
		[]domain.Selection{{DishID: "1", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestOrderService_Quote(t *testing.T) {
	tests := []struct {
		name       string
		selections []domain.Selection
		wantTotal  float64
		wantErr    error
	}{
		{
			name:      "nothing selected",
			wantTotal: 0,
		},
		{
			name:       "single dish",
			selections: []domain.Selection{{DishID: "1", Quantity: 3}},
			wantTotal:  60.0,
		},
		{
			name:       "mixed selection skips zero quantities",
			selections: []domain.Selection{{DishID: "1", Quantity: 2}, {DishID: "2", Quantity: 0}, {DishID: "3", Quantity: 1}},
			wantTotal:  58.5,
		},
		{
			name:       "unknown dish",
			selections: []domain.Selection{{DishID: "999", Quantity: 1}},
			wantErr:    domain.ErrDishNotFound,
		},
		{
			name:       "quantity above availability",
			selections: []domain.Selection{{DishID: "3", Quantity: 16}},
			wantErr:    domain.ErrInsufficientStock,
		},
		{
			name:       "repeated dish within combined availability",
			selections: []domain.Selection{{DishID: "3", Quantity: 10}, {DishID: "3", Quantity: 5}},
			wantTotal:  277.5,
		},
		{
			name:       "repeated dish above combined availability",
			selections: []domain.Selection{{DishID: "3", Quantity: 10}, {DishID: "3", Quantity: 10}},
			wantErr:    domain.ErrInsufficientStock,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, _, svc := newOrdering()

			total, err := svc.Quote(testCase.selections)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, total)
		})
	}
}

func TestOrderService_QuoteMatchesPlacedTotal(t *testing.T) {
	_, _, svc := newOrdering()
	selections := []domain.Selection{{DishID: "1", Quantity: 2}, {DishID: "2", Quantity: 3}}

	quoted, err := svc.Quote(selections)
	assert.NoError(t, err)

	order, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1", selections)
	assert.NoError(t, err)
	assert.Equal(t, quoted, order.Total)
}

func TestOrderService_PlacePublishesEventAndStoresQR(t *testing.T) {
	store := newSeededStore()
	publisher := new(mocks.OrderPublisher)
	qrGen := new(mocks.QRGenerator)
	svc := service.NewOrderService(store, store, publisher, qrGen)

	qrGen.On("Generate", mock.AnythingOfType("string")).Return([]byte("qr-bytes"), nil).Once()
	publisher.On("PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == "order_placed" && event.Total == 60.0 && event.ItemCount == 1
	})).Return(nil).Once()

	order, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1",
		[]domain.Selection{{DishID: "1", Quantity: 3}})
	assert.NoError(t, err)

	qr, err := svc.GetQRCode(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, []byte("qr-bytes"), qr)

	publisher.AssertExpectations(t)
	qrGen.AssertExpectations(t)
}

func TestOrderService_PlaceRepositoryError(t *testing.T) {
	orderRepo := new(mocks.OrderRepository)
	publisher := new(mocks.OrderPublisher)
	svc := service.NewOrderService(orderRepo, new(mocks.CatalogRepository), publisher, nil)

	orderRepo.On("CreateOrder", "Jan", "123", "ul. X 1", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := svc.Place(context.Background(), "Jan", "123", "ul. X 1",
		[]domain.Selection{{DishID: "1", Quantity: 1}})

	assert.Error(t, err)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_GetQRCodeRegenerates(t *testing.T) {
	store := newSeededStore()
	qrGen := new(mocks.QRGenerator)
	svc := service.NewOrderService(store, store, nil, nil)

	order, err := svc.Place(context.Background(), "Jan Kowalski", "+48123456789", "ul. X 1",
		[]domain.Selection{{DishID: "2", Quantity: 1}})
	assert.NoError(t, err)

	// no encoder at placement time, so nothing stored yet
	regenerating := service.NewOrderService(store, store, nil, qrGen)
	qrGen.On("Generate", order.ID).Return([]byte("late-qr"), nil).Once()

	qr, err := regenerating.GetQRCode(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, []byte("late-qr"), qr)
	qrGen.AssertExpectations(t)
}

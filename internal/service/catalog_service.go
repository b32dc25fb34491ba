package service

import (
	"errors"
	"math"
	"strings"

	"github.com/piganiec/hardbistro-app/internal/domain"
)

var (
	ErrDishNameRequired = errors.New("dish name is required")
	ErrInvalidPrice     = errors.New("dish price must be a non-negative number")
	ErrInvalidStock     = errors.New("dish quantities must be non-negative integers")
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return ErrDishNameRequired
	}
	if err := validPrice(dish.Price); err != nil {
		return err
	}
	if dish.AvailableQuantity < 0 || dish.OriginalQuantity < 0 {
		return ErrInvalidStock
	}
	return s.repo.InsertDish(dish)
}

func (s *CatalogService) List() ([]domain.Dish, error) {
	return s.repo.ListDishes()
}

func (s *CatalogService) Get(id string) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *CatalogService) Update(id string, updates domain.DishUpdate) (*domain.Dish, error) {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return nil, ErrDishNameRequired
	}
	if updates.Price != nil {
		if err := validPrice(*updates.Price); err != nil {
			return nil, err
		}
	}
	if updates.AvailableQuantity != nil && *updates.AvailableQuantity < 0 {
		return nil, ErrInvalidStock
	}
	if updates.OriginalQuantity != nil && *updates.OriginalQuantity < 0 {
		return nil, ErrInvalidStock
	}
	return s.repo.UpdateDish(id, updates)
}

func (s *CatalogService) Delete(id string) error {
	rows, err := s.repo.DeleteDish(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

func validPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

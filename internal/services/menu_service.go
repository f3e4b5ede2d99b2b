package services

import (
	"errors"
	"fmt"
	"strings"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemInput carries the editable fields of a menu item.
type MenuItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image_path"`
}

type MenuService interface {
	AddItem(actor models.Actor, input MenuItemInput) (*models.MenuItem, error)
	UpdateItem(actor models.Actor, itemID uint, input MenuItemInput) (*models.MenuItem, error)
	DeleteItem(actor models.Actor, itemID uint) error
	GetMenu(restaurantID uint) ([]models.MenuItem, error)
	GetItem(itemID uint) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func validateMenuInput(input MenuItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if !input.Price.IsPositive() {
		return fmt.Errorf("price must be positive: %w", ErrInvalidInput)
	}
	return nil
}

func (s *menuService) AddItem(actor models.Actor, input MenuItemInput) (*models.MenuItem, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		RestaurantID: actor.RestaurantID,
		ImagePath:    input.ImagePath,
	}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) UpdateItem(actor models.Actor, itemID uint, input MenuItemInput) (*models.MenuItem, error) {
	if !actor.IsRestaurant() {
		return nil, ErrForbidden
	}

	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	if item.RestaurantID != actor.RestaurantID {
		return nil, ErrForbidden
	}
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	if input.ImagePath != "" {
		item.ImagePath = input.ImagePath
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) DeleteItem(actor models.Actor, itemID uint) error {
	if !actor.IsRestaurant() {
		return ErrForbidden
	}

	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
		}
		return fmt.Errorf("failed to load menu item: %w", err)
	}

	if item.RestaurantID != actor.RestaurantID {
		return ErrForbidden
	}

	return s.menuRepo.Delete(itemID)
}

func (s *menuService) GetMenu(restaurantID uint) ([]models.MenuItem, error) {
	return s.menuRepo.GetByRestaurantID(restaurantID)
}

func (s *menuService) GetItem(itemID uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

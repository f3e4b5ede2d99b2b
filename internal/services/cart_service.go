package services

import (
	"context"
	"errors"
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine is one resolved cart entry: the menu item, the selected quantity
// and the line price (unit price x quantity).
type CartLine struct {
	Item      models.MenuItem `json:"item"`
	Quantity  int             `json:"quantity"`
	LinePrice decimal.Decimal `json:"line_price"`
}

type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type CartService interface {
	AddItem(ctx context.Context, sessionID string, itemID uint) (*session.CartState, error)
	RemoveItem(ctx context.Context, sessionID string, itemID uint) (*session.CartState, error)
	ViewCart(ctx context.Context, sessionID string) (*CartView, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	menuRepo repository.MenuRepository
	carts    *session.Store
}

func NewCartService(menuRepo repository.MenuRepository, carts *session.Store) CartService {
	return &cartService{menuRepo: menuRepo, carts: carts}
}

// AddItem increments the quantity for a menu item, creating the cart on
// first use. The item must exist in the catalog; on any failure the cart is
// left untouched.
func (s *cartService) AddItem(ctx context.Context, sessionID string, itemID uint) (*session.CartState, error) {
	if _, err := s.menuRepo.GetByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve menu item: %w", err)
	}

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrNoCart) {
			return nil, err
		}
		state = session.NewCartState(sessionID)
	}

	state.Add(itemID)
	if err := s.carts.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return state, nil
}

// RemoveItem deletes the entry outright, not one unit at a time.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, itemID uint) (*session.CartState, error) {
	if _, err := s.menuRepo.GetByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve menu item: %w", err)
	}

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoCart) {
			return nil, ErrItemNotInCart
		}
		return nil, err
	}

	if !state.Remove(itemID) {
		return nil, ErrItemNotInCart
	}

	if err := s.carts.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return state, nil
}

// ViewCart resolves every entry against the catalog. Entries whose menu
// item has since been deleted are skipped, not reported as errors.
func (s *cartService) ViewCart(ctx context.Context, sessionID string) (*CartView, error) {
	view := &CartView{Lines: []CartLine{}, Total: decimal.Zero}

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoCart) {
			return view, nil
		}
		return nil, err
	}

	for itemID, quantity := range state.Items {
		item, err := s.menuRepo.GetByID(itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve menu item: %w", err)
		}

		linePrice := item.Price.Mul(decimal.NewFromInt(int64(quantity)))
		view.Lines = append(view.Lines, CartLine{Item: *item, Quantity: quantity, LinePrice: linePrice})
		view.Total = view.Total.Add(linePrice)
	}

	return view, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

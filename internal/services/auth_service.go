package services

import (
	"errors"
	"fmt"
	"strings"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/pkg/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CustomerSignUp struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type RestaurantSignUp struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
}

type AuthService interface {
	SignUpCustomer(input CustomerSignUp) (string, *models.Customer, error)
	SignUpRestaurant(input RestaurantSignUp) (string, *models.Restaurant, error)
	Login(email, password string) (string, models.Actor, error)
	ActivateMembership(actor models.Actor, membershipType models.MembershipType) (*models.Customer, error)
}

type authService struct {
	customerRepo   repository.CustomerRepository
	restaurantRepo repository.RestaurantRepository
	tokens         *token.Manager
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	restaurantRepo repository.RestaurantRepository,
	tokens *token.Manager,
) AuthService {
	return &authService{
		customerRepo:   customerRepo,
		restaurantRepo: restaurantRepo,
		tokens:         tokens,
	}
}

func (s *authService) validateCredentials(email, password string) error {
	if len(strings.TrimSpace(email)) < 4 {
		return fmt.Errorf("email must be greater than 3 characters: %w", ErrInvalidInput)
	}
	if len(password) < 7 {
		return fmt.Errorf("password must be at least 7 characters: %w", ErrInvalidInput)
	}
	return nil
}

// emailExists checks both account tables; an address may exist as either a
// customer or a restaurant, never both.
func (s *authService) emailExists(email string) (bool, error) {
	if _, err := s.customerRepo.GetByEmail(email); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if _, err := s.restaurantRepo.GetByEmail(email); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return false, nil
}

func (s *authService) SignUpCustomer(input CustomerSignUp) (string, *models.Customer, error) {
	if err := s.validateCredentials(input.Email, input.Password); err != nil {
		return "", nil, err
	}

	taken, err := s.emailExists(input.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &models.Customer{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Address:      input.Address,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return "", nil, fmt.Errorf("failed to create customer: %w", err)
	}

	tok, err := s.tokens.Issue(models.CustomerActor(customer.ID))
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return tok, customer, nil
}

func (s *authService) SignUpRestaurant(input RestaurantSignUp) (string, *models.Restaurant, error) {
	if err := s.validateCredentials(input.Email, input.Password); err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return "", nil, fmt.Errorf("name and category are required: %w", ErrInvalidInput)
	}

	taken, err := s.emailExists(input.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	restaurant := &models.Restaurant{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Category:     input.Category,
		Address:      input.Address,
	}
	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return "", nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	tok, err := s.tokens.Issue(models.RestaurantActor(restaurant.ID))
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return tok, restaurant, nil
}

// Login checks the customer table first, then restaurants, mirroring the
// single login form both account types share.
func (s *authService) Login(email, password string) (string, models.Actor, error) {
	customer, err := s.customerRepo.GetByEmail(email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
			return "", models.Actor{}, ErrInvalidCredentials
		}
		actor := models.CustomerActor(customer.ID)
		tok, err := s.tokens.Issue(actor)
		if err != nil {
			return "", models.Actor{}, fmt.Errorf("failed to issue token: %w", err)
		}
		return tok, actor, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.Actor{}, fmt.Errorf("failed to look up customer: %w", err)
	}

	restaurant, err := s.restaurantRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.Actor{}, ErrInvalidCredentials
		}
		return "", models.Actor{}, fmt.Errorf("failed to look up restaurant: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(restaurant.PasswordHash), []byte(password)) != nil {
		return "", models.Actor{}, ErrInvalidCredentials
	}

	actor := models.RestaurantActor(restaurant.ID)
	tok, err := s.tokens.Issue(actor)
	if err != nil {
		return "", models.Actor{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return tok, actor, nil
}

func (s *authService) ActivateMembership(actor models.Actor, membershipType models.MembershipType) (*models.Customer, error) {
	if !actor.IsCustomer() {
		return nil, ErrForbidden
	}
	if !membershipType.Valid() {
		return nil, ErrInvalidMembership
	}

	customer, err := s.customerRepo.GetByID(actor.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", actor.CustomerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	customer.Membership = true
	customer.MembershipType = string(membershipType)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}
	return customer, nil
}

package services

import "errors"

var (
	// not-found
	ErrNotFound = errors.New("resource not found")

	// forbidden
	ErrForbidden = errors.New("forbidden")

	// validation
	ErrEmptyCart         = errors.New("cart is empty")
	ErrItemNotInCart     = errors.New("item not found in cart")
	ErrMixedRestaurants  = errors.New("cart contains items from multiple restaurants")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidMembership = errors.New("invalid membership type")
	ErrInvalidInput      = errors.New("invalid input")

	// conflict
	ErrDuplicateReview = errors.New("review already exists for this order")
	ErrEmailTaken      = errors.New("email already exists")

	// authentication
	ErrInvalidCredentials = errors.New("invalid email or password")
)

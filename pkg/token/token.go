package token

import (
	"errors"
	"fmt"
	"time"

	"food_ordering/internal/models"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Manager issues and parses the HMAC-signed tokens that carry the
// authenticated actor between requests.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(actor models.Actor) (string, error) {
	var id uint
	switch actor.Kind {
	case models.ActorCustomer:
		id = actor.CustomerID
	case models.ActorRestaurant:
		id = actor.RestaurantID
	default:
		return "", fmt.Errorf("unknown actor kind %q", actor.Kind)
	}

	claims := jwt.MapClaims{
		"kind": string(actor.Kind),
		"id":   float64(id),
		"exp":  time.Now().Add(m.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) Parse(tokenString string) (models.Actor, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return models.Actor{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, ErrInvalidToken
	}

	kind, _ := claims["kind"].(string)
	id, _ := claims["id"].(float64)
	if id <= 0 {
		return models.Actor{}, ErrInvalidToken
	}

	switch models.ActorKind(kind) {
	case models.ActorCustomer:
		return models.CustomerActor(uint(id)), nil
	case models.ActorRestaurant:
		return models.RestaurantActor(uint(id)), nil
	}
	return models.Actor{}, ErrInvalidToken
}

package token

import (
	"testing"
	"time"

	"food_ordering/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	tok, err := manager.Issue(models.CustomerActor(42))
	require.NoError(t, err)

	actor, err := manager.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, models.ActorCustomer, actor.Kind)
	assert.Equal(t, uint(42), actor.CustomerID)

	tok, err = manager.Issue(models.RestaurantActor(7))
	require.NoError(t, err)

	actor, err = manager.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, models.ActorRestaurant, actor.Kind)
	assert.Equal(t, uint(7), actor.RestaurantID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewManager("secret-a", time.Hour).Issue(models.CustomerActor(1))
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	tok, err := manager.Issue(models.CustomerActor(1))
	require.NoError(t, err)

	_, err = manager.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRejectsUnknownKind(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Issue(models.Actor{Kind: "robot"})
	assert.Error(t, err)
}

package repository

import (
	"testing"
	"time"

	"food_ordering/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestMenuRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "restaurant_id", "image_path", "created_at", "updated_at", "deleted_at"}).
		AddRow(5, "Margherita", "Tomato and mozzarella", "10.00", 1, "", now, now, nil)
	mock.ExpectQuery(`SELECT (.+) FROM "menu_items"`).WillReturnRows(rows)

	item, err := repo.GetByID(5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), item.ID)
	assert.Equal(t, "Margherita", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("10.00")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "menu_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryCreateCommitsHeaderAndItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	order := &models.Order{
		CustomerID:    1,
		RestaurantID:  2,
		TotalPrice:    decimal.RequireFromString("25.00"),
		ServiceOption: models.ServicePayOnDemand,
		Status:        models.OrderPending,
		Items: []models.OrderItem{
			{MenuItemID: 42, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{MenuItemID: 7, Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
	require.NoError(t, repo.Create(order))
	assert.Equal(t, uint(1), order.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	order := &models.Order{
		CustomerID:   1,
		RestaurantID: 2,
		TotalPrice:   decimal.RequireFromString("10.00"),
		Items: []models.OrderItem{
			{MenuItemID: 42, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
	assert.Error(t, repo.Create(order))

	// The whole unit rolled back: no dangling item inserts were attempted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryAverageForRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT AVG\(reviews.rating\)`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.5))

	average, err := repo.AverageForRestaurant(1)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, average, 0.001)
}

func TestReviewRepositoryAverageNoReviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT AVG\(reviews.rating\)`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	average, err := repo.AverageForRestaurant(1)
	require.NoError(t, err)
	assert.Zero(t, average)
}

package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"expense_backend/internal/feature/auth/domain/entity"
	"expense_backend/internal/feature/auth/usecase"
)

// setupTestDB opens an in-memory SQLite database with the auth schema.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey,
// matching the production configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &SessionModel{}))
	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("assigns an id and persists the row", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		u := &entity.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}

		require.NoError(t, repo.Create(context.Background(), u))
		assert.NotZero(t, u.ID)

		found, err := repo.FindByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
		assert.Equal(t, "Alice", found.Name)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		require.NoError(t, repo.Create(context.Background(), &entity.User{
			Name: "Alice", Email: "alice@example.com", Password: "hash",
		}))

		err := repo.Create(context.Background(), &entity.User{
			Name: "Other Alice", Email: "alice@example.com", Password: "hash2",
		})
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGorm_Find(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	u := &entity.User{Name: "Bob", Email: "bob@example.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(context.Background(), "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", found.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

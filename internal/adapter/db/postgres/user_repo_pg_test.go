package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	domain "user-weather-service/internal/domain/user"
)

func setupTestRepo(t *testing.T) *UserRepoPG {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&UserSchema{})
	require.NoError(t, err)

	return NewUserRepoPG(db, zaptest.NewLogger(t))
}

func seedUser(t *testing.T, repo *UserRepoPG, id, name, email string, createdAt time.Time) domain.User {
	u := domain.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), &u))
	return u
}

func TestUserRepoPG_CreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	seedUser(t, repo, "id-1", "John Doe", "john@example.com", now)

	got, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt))
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoPG_List(t *testing.T) {
	repo := setupTestRepo(t)
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		name := "John"
		if i%2 == 1 {
			name = "Jane"
		}
		seedUser(t, repo, fmt.Sprintf("id-%d", i), name,
			fmt.Sprintf("user%d@example.com", i), base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("orders by creation time descending", func(t *testing.T) {
		users, err := repo.List(context.Background(), domain.ListFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, users, 5)
		for i := 1; i < len(users); i++ {
			assert.True(t, users[i].CreatedAt.Before(users[i-1].CreatedAt))
		}
	})

	t.Run("name filter is exact match", func(t *testing.T) {
		users, err := repo.List(context.Background(), domain.ListFilter{Name: "John", Limit: 10})
		require.NoError(t, err)
		require.Len(t, users, 3)
		for _, u := range users {
			assert.Equal(t, "John", u.Name)
		}
	})

	t.Run("name and email filters combine with AND", func(t *testing.T) {
		users, err := repo.List(context.Background(), domain.ListFilter{
			Name:  "John",
			Email: "user2@example.com",
			Limit: 10,
		})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "id-2", users[0].ID)

		users, err = repo.List(context.Background(), domain.ListFilter{
			Name:  "Jane",
			Email: "user2@example.com",
			Limit: 10,
		})
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("limit and offset apply after filtering", func(t *testing.T) {
		users, err := repo.List(context.Background(), domain.ListFilter{Name: "John", Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, users, 2)
		// newest John is id-4; offset skips it
		assert.Equal(t, "id-2", users[0].ID)
		assert.Equal(t, "id-0", users[1].ID)
	})
}

func TestUserRepoPG_Update(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		repo := setupTestRepo(t)
		created := seedUser(t, repo, "id-1", "John Doe", "john@example.com",
			time.Now().UTC().Add(-time.Minute))

		name := "Jane Doe"
		updated, err := repo.Update(context.Background(), "id-1", &name, nil)
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, "john@example.com", updated.Email)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("empty partial update still advances updated_at", func(t *testing.T) {
		repo := setupTestRepo(t)
		created := seedUser(t, repo, "id-1", "John Doe", "john@example.com",
			time.Now().UTC().Add(-time.Minute))

		updated, err := repo.Update(context.Background(), "id-1", nil, nil)
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "John Doe", updated.Name)
		assert.Equal(t, "john@example.com", updated.Email)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("absent row returns nil", func(t *testing.T) {
		repo := setupTestRepo(t)

		updated, err := repo.Update(context.Background(), "missing", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestUserRepoPG_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	seedUser(t, repo, "id-1", "John Doe", "john@example.com", time.Now().UTC())

	deleted, err := repo.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

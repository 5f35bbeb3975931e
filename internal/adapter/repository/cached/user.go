package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"user-weather-service/internal/adapter/cache"
	domain "user-weather-service/internal/domain/user"
	"user-weather-service/internal/usecase/user"
)

// UserRepository implements user.Repository with read-through caching on
// GetByID. Writes go straight to the backing repository and invalidate the
// cached entry. A nil cache disables caching entirely.
type UserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewUserRepository creates a new cached repository decorator.
func NewUserRepository(dbRepo user.Repository, cache cache.UserCache, log *zap.Logger) user.Repository {
	return &UserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.dbRepo.Create(ctx, u)
}

// GetByID retrieves a user by ID using the cache-aside pattern. Concurrent
// misses for the same id collapse into a single database read.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.String("id", id), zap.Error(err))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	key := fmt.Sprintf("user:%s", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Another request may have populated the cache while we waited
		if r.cache != nil {
			cachedUser, err := r.cache.Get(ctx, id)
			if err == nil && cachedUser != nil {
				return cachedUser, nil
			}
		}

		u, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// Absent rows are not cached; not-found stays a repository miss
		if u != nil && r.cache != nil {
			if err := r.cache.Set(ctx, u); err != nil {
				r.log.Warn("failed to cache user", zap.String("id", id), zap.Error(err))
			}
		}

		return u, nil
	})

	if err != nil {
		return nil, err
	}
	return result.(*domain.User), nil
}

// List delegates to the DB repository; listings are never cached.
func (r *UserRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.User, error) {
	return r.dbRepo.List(ctx, f)
}

// Update updates the user in DB and invalidates the cached entry.
func (r *UserRepository) Update(ctx context.Context, id string, name, email *string) (*domain.User, error) {
	u, err := r.dbRepo.Update(ctx, id, name, email)
	if err != nil {
		return nil, err
	}

	if u != nil && r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after update", zap.String("id", id), zap.Error(err))
		}
	}

	return u, nil
}

// Delete deletes the user from DB and invalidates the cached entry.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.dbRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted && r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.String("id", id), zap.Error(err))
		}
	}

	return deleted, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-weather-service/internal/domain/user"
)

// UserRepoPG implements the user Repository interface using GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// Timestamps are assigned by the service layer, not by GORM hooks.
type UserSchema struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Create inserts a new user into the database.
func (r *UserRepoPG) Create(ctx context.Context, u *domain.User) error {
	if u == nil {
		return errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return nil
}

// GetByID retrieves a user by their unique ID. Returns (nil, nil) when no
// row matches.
func (r *UserRepoPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomain(&model), nil
}

// List retrieves users ordered by creation time descending. The equality
// filters are collected into a single map and issued in one Where call, so
// name and email always combine with AND.
func (r *UserRepoPG) List(ctx context.Context, f domain.ListFilter) ([]domain.User, error) {
	filters := map[string]any{}
	if f.Name != "" {
		filters["name"] = f.Name
	}
	if f.Email != "" {
		filters["email"] = f.Email
	}

	q := r.db.WithContext(ctx).Model(&UserSchema{}).Order("created_at DESC")
	if len(filters) > 0 {
		q = q.Where(filters)
	}

	var models []UserSchema
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err),
			zap.String("name", f.Name), zap.String("email", f.Email))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, len(models))
	for i := range models {
		users[i] = *toDomain(&models[i])
	}
	return users, nil
}

// Update writes only the provided fields plus a fresh updated_at, then
// re-reads the record. Returns (nil, nil) when no row matched the id; an
// empty partial update still advances updated_at.
func (r *UserRepoPG) Update(ctx context.Context, id string, name, email *string) (*domain.User, error) {
	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if name != nil {
		updates["name"] = *name
	}
	if email != nil {
		updates["email"] = *email
	}

	res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.String("id", id))
		return nil, fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	r.log.Info("user updated in db", zap.String("id", id))
	return r.GetByID(ctx, id)
}

// Delete removes the row matching id. The bool reports whether a row was
// actually removed.
func (r *UserRepoPG) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, "id = ?", id)
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.String("id", id))
		return false, fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	r.log.Info("user deleted in db", zap.String("id", id))
	return true, nil
}

func toDomain(m *UserSchema) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

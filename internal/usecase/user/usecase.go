package user

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "user-weather-service/internal/domain/user"
	"user-weather-service/internal/validation"
	pkgerrors "user-weather-service/pkg/errors"
)

// Repository defines the interface for user data access operations.
// GetByID and Update report an absent row as (nil, nil); absence is a
// normal outcome, not a repository error.
type Repository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.User, error)
	Update(ctx context.Context, id string, name, email *string) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service implements the business logic for user management operations.
// It is stateless and safe for concurrent use; one instance is constructed
// at startup and shared by all handlers.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

func (s *Service) validateRequest(in any) error {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return pkgerrors.NewValidationError(validation.FieldErrors(err))
	}
	return nil
}

// CreateUser mints a fresh id, stamps both timestamps with the same instant
// and persists the record. Store rejections (e.g. a unique constraint on
// email) are not caught here; they propagate to the handler's 500 path.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validateRequest(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toDTO(&u), nil
}

// GetUser retrieves a user by ID, returning ErrUserNotFound when no row matches.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	if err := s.validateRequest(in); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to get user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Debug("user not found", zap.String("id", in.ID))
		return nil, pkgerrors.ErrUserNotFound
	}

	return toDTO(u), nil
}

// ListUsers returns users matching the optional exact-match filters, ordered
// by creation time descending. Out-of-range limit and offset fall back to
// their defaults instead of erroring.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) ([]User, error) {
	if err := s.validateRequest(in); err != nil {
		return nil, err
	}

	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	s.log.Info("listing users",
		zap.String("name", in.Name),
		zap.String("email", in.Email),
		zap.Int("limit", in.Limit),
		zap.Int("offset", in.Offset),
	)

	records, err := s.repo.List(ctx, domain.ListFilter{
		Name:   in.Name,
		Email:  in.Email,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(records))
	for i := range records {
		users[i] = *toDTO(&records[i])
	}
	return users, nil
}

// UpdateUser merges only the provided fields into the stored record and
// refreshes UpdatedAt. An empty partial update still advances UpdatedAt.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	s.log.Info("updating user", zap.String("id", in.ID))

	if err := s.validateRequest(in); err != nil {
		return nil, err
	}

	u, err := s.repo.Update(ctx, in.ID, in.Name, in.Email)
	if err != nil {
		s.log.Error("failed to update user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Debug("user not found for update", zap.String("id", in.ID))
		return nil, pkgerrors.ErrUserNotFound
	}

	return toDTO(u), nil
}

// DeleteUser removes the row matching the id. Hard delete, no tombstone.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	s.log.Info("deleting user", zap.String("id", in.ID))

	if err := s.validateRequest(in); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	if !deleted {
		s.log.Debug("user not found for delete", zap.String("id", in.ID))
		return nil, pkgerrors.ErrUserNotFound
	}

	return &DeleteUserResponse{ID: in.ID}, nil
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-weather-service/internal/domain/user"
	pkgerrors "user-weather-service/pkg/errors"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, name, email *string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newService(t *testing.T) (*Service, *MockRepository) {
	repo := new(MockRepository)
	return New(repo, zaptest.NewLogger(t)), repo
}

func TestCreateUser(t *testing.T) {
	t.Run("generates fresh id and equal timestamps", func(t *testing.T) {
		svc, repo := newService(t)

		var stored *domain.User
		repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.User)
			}).
			Return(nil)

		resp, err := svc.CreateUser(context.Background(), CreateUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "John Doe", resp.Name)
		assert.Equal(t, "john@example.com", resp.Email)
		assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
		require.NotNil(t, stored)
		assert.Equal(t, resp.ID, stored.ID)
	})

	t.Run("ids are never reused", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			resp, err := svc.CreateUser(context.Background(), CreateUserRequest{
				Name:  "John Doe",
				Email: "john@example.com",
			})
			require.NoError(t, err)
			assert.False(t, seen[resp.ID], "id %s issued twice", resp.ID)
			seen[resp.ID] = true
		}
	})

	t.Run("validation failure reports every failing field", func(t *testing.T) {
		svc, repo := newService(t)

		_, err := svc.CreateUser(context.Background(), CreateUserRequest{})
		require.Error(t, err)

		var validationErr *pkgerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Fields, 2)
		assert.Contains(t, validationErr.Fields[0], "name")
		assert.Contains(t, validationErr.Fields[1], "email")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("store rejection propagates", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key value"))

		_, err := svc.CreateUser(context.Background(), CreateUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		})
		assert.EqualError(t, err, "duplicate key value")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("GetByID", mock.Anything, "abc").Return(&domain.User{
			ID:    "abc",
			Name:  "John Doe",
			Email: "john@example.com",
		}, nil)

		resp, err := svc.GetUser(context.Background(), GetUserRequest{ID: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "abc", resp.ID)
	})

	t.Run("absent row maps to not found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.GetUser(context.Background(), GetUserRequest{ID: "missing"})

		var notFound *pkgerrors.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "User not found", notFound.Error())
	})
}

func TestListUsers(t *testing.T) {
	t.Run("passes filters through and defaults limit", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("List", mock.Anything, domain.ListFilter{
			Name:   "John",
			Limit:  10,
			Offset: 0,
		}).Return([]domain.User{{ID: "a", Name: "John"}}, nil)

		resp, err := svc.ListUsers(context.Background(), ListUsersRequest{Name: "John"})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "John", resp[0].Name)
	})

	t.Run("limit clamped to 100", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("List", mock.Anything, domain.ListFilter{Limit: 100}).Return([]domain.User{}, nil)

		_, err := svc.ListUsers(context.Background(), ListUsersRequest{Limit: 5000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("malformed email filter rejected", func(t *testing.T) {
		svc, repo := newService(t)

		_, err := svc.ListUsers(context.Background(), ListUsersRequest{Email: "not-an-email"})

		var validationErr *pkgerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		repo.AssertNotCalled(t, "List")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("only provided fields are forwarded", func(t *testing.T) {
		svc, repo := newService(t)
		name := "Jane Doe"
		repo.On("Update", mock.Anything, "abc", &name, (*string)(nil)).Return(&domain.User{
			ID:    "abc",
			Name:  "Jane Doe",
			Email: "john@example.com",
		}, nil)

		resp, err := svc.UpdateUser(context.Background(), UpdateUserRequest{ID: "abc", Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.Name)
		assert.Equal(t, "john@example.com", resp.Email)
	})

	t.Run("absent row maps to not found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Update", mock.Anything, "missing", (*string)(nil), (*string)(nil)).Return(nil, nil)

		_, err := svc.UpdateUser(context.Background(), UpdateUserRequest{ID: "missing"})

		var notFound *pkgerrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("returns deleted id", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Delete", mock.Anything, "abc").Return(true, nil)

		resp, err := svc.DeleteUser(context.Background(), DeleteUserRequest{ID: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "abc", resp.ID)
	})

	t.Run("nothing removed maps to not found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Delete", mock.Anything, "missing").Return(false, nil)

		_, err := svc.DeleteUser(context.Background(), DeleteUserRequest{ID: "missing"})

		var notFound *pkgerrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

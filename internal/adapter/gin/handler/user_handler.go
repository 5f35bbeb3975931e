package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"user-weather-service/internal/usecase/user"
	"user-weather-service/internal/validation"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest represents the HTTP request body for a partial update.
// Absent fields stay nil and are never written to the stored record.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// listUsersQuery represents the filter portion of the list query string
type listUsersQuery struct {
	Name  string `form:"name"`
	Email string `form:"email" binding:"omitempty,email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteUserResponse carries the id of the removed user
type DeleteUserResponse struct {
	ID string `json:"id"`
}

// bindingErrors converts a gin binding failure into field-level messages
func bindingErrors(err error) []string {
	if _, ok := err.(validator.ValidationErrors); ok {
		return validation.FieldErrors(err)
	}
	return []string{"request body must be valid JSON"}
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create user request", zap.Error(err))
		respondValidationError(c, bindingErrors(err))
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.log.Error("create user failed", zap.Error(err))
		respondError(c, err, "Failed to create user")
		return
	}

	respondOK(c, toUserResponse(resp), "User created successfully")
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondValidationError(c, []string{"id is required"})
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.log.Warn("get user failed", zap.String("id", id), zap.Error(err))
		respondError(c, err, "Failed to fetch user data")
		return
	}

	respondOK(c, toUserResponse(resp), "User fetched successfully")
}

// ListUsers handles GET /user
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.log.Warn("invalid list users query", zap.Error(err))
		respondValidationError(c, bindingErrors(err))
		return
	}

	// Unparseable limit/offset fall back to their defaults, never a 400
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{
		Name:   q.Name,
		Email:  q.Email,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		respondError(c, err, "Failed to fetch users data")
		return
	}

	users := make([]UserResponse, len(resp))
	for i := range resp {
		users[i] = *toUserResponse(&resp[i])
	}

	respondOK(c, users, "Users fetched successfully")
}

// UpdateUser handles PATCH /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondValidationError(c, []string{"id is required"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update user request", zap.String("id", id), zap.Error(err))
		respondValidationError(c, bindingErrors(err))
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.log.Warn("update user failed", zap.String("id", id), zap.Error(err))
		respondError(c, err, "Failed to update user")
		return
	}

	respondOK(c, toUserResponse(resp), "User updated successfully")
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondValidationError(c, []string{"id is required"})
		return
	}

	resp, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id})
	if err != nil {
		h.log.Warn("delete user failed", zap.String("id", id), zap.Error(err))
		respondError(c, err, "Failed to delete user")
		return
	}

	respondOK(c, DeleteUserResponse{ID: resp.ID}, "User deleted successfully")
}

func toUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

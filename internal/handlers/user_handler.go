package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daveylupes/womantech/internal/services"
	"github.com/daveylupes/womantech/internal/utils"
	"github.com/daveylupes/womantech/internal/validator"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// Register creates a new user profile
// @Summary Register user
// @Description Registers a new user keyed by wallet address
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.RegisterUserRequest true "User data"
// @Success 200 {object} services.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Registering user", "wallet_address", req.WalletAddress)

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetCurrent resolves the authenticated caller's profile
// @Summary Get current user
// @Description Returns the profile of the authenticated caller
// @Tags users
// @Produce json
// @Failure 501 {object} ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, err := h.userService.GetCurrent(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Search finds users by role and skill
// @Summary Search users
// @Description Searches active users filtered by role and exact skill
// @Tags users
// @Produce json
// @Param role query string false "Filter by role (MENTOR, MENTEE, ADMIN)"
// @Param skills query string false "Filter by exact skill"
// @Param limit query int false "Result cap (default: 10)"
// @Success 200 {object} services.SearchUsersResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	req := &services.SearchUsersRequest{}

	if role := c.Query("role"); role != "" {
		req.Role = &role
	}
	if skills := c.Query("skills"); skills != "" {
		req.Skills = &skills
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid limit parameter",
				Details: limitStr,
			})
			return
		}
		req.Limit = limit
	}

	h.LogRequest(c, "Searching users", "role", c.Query("role"), "skills", c.Query("skills"))

	result, err := h.userService.Search(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByWallet retrieves a user by wallet address
// @Summary Get user
// @Description Retrieves an active user by wallet address
// @Tags users
// @Produce json
// @Param wallet_address path string true "Wallet address"
// @Success 200 {object} services.UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{wallet_address} [get]
func (h *UserHandler) GetByWallet(c *gin.Context) {
	walletAddress := c.Param("wallet_address")

	h.LogRequest(c, "Getting user", "wallet_address", walletAddress)

	user, err := h.userService.GetByWallet(c.Request.Context(), walletAddress)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies profile changes to an existing user
// @Summary Update user profile
// @Description Updates the mutable profile fields of a user
// @Tags users
// @Accept json
// @Produce json
// @Param wallet_address path string true "Wallet address"
// @Param user body services.UpdateUserRequest true "Profile changes"
// @Success 200 {object} services.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{wallet_address} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	walletAddress := c.Param("wallet_address")

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating user profile", "wallet_address", walletAddress)

	user, err := h.userService.UpdateProfile(c.Request.Context(), walletAddress, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Deactivate soft-deletes a user
// @Summary Deactivate user
// @Description Marks a user inactive; subsequent lookups return 404
// @Tags users
// @Produce json
// @Param wallet_address path string true "Wallet address"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /users/{wallet_address} [delete]
func (h *UserHandler) Deactivate(c *gin.Context) {
	walletAddress := c.Param("wallet_address")

	h.LogRequest(c, "Deactivating user", "wallet_address", walletAddress)

	if err := h.userService.Deactivate(c.Request.Context(), walletAddress); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, services.ErrDuplicateWallet):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "User with this wallet address already exists",
		})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "User with this email already exists",
		})
	case errors.Is(err, services.ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, ErrorResponse{
			Message: "Authentication not implemented yet",
		})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Bad request",
			Details: err.Error(),
		})
	default:
		h.RespondInternalError(c, err)
	}
}

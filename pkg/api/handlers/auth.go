package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfigueredo/hearth/pkg/api/types"
	"github.com/mfigueredo/hearth/pkg/auth"
	"github.com/mfigueredo/hearth/pkg/db"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	users  db.UserStore
	tokens *auth.Tokens
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users db.UserStore, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register handles POST /auth/register
// @Summary      Register a new user
// @Description  Creates a user account with a starter set of devices
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      types.RegisterRequest  true  "Credentials"
// @Success      201      {object}  types.RegisterResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      409      {object}  types.ErrorResponse  "Username already exists"
// @Failure      500      {object}  types.ErrorResponse  "Internal error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "username and password are required",
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create user",
		})
		return
	}

	user := &db.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, db.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, types.ErrorResponse{
				Error:   "username_taken",
				Message: "Username already exists",
			})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusCreated, types.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login handles POST /auth/login
// @Summary      Log in
// @Description  Verifies credentials and returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      types.LoginRequest  true  "Credentials"
// @Success      200      {object}  types.TokenResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      401      {object}  types.ErrorResponse  "Invalid credentials"
// @Failure      500      {object}  types.ErrorResponse  "Internal error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "username and password are required",
		})
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid username or password",
			})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("failed to look up user")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to log in",
		})
		return
	}

	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username or password",
		})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to log in",
		})
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

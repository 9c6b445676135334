// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"carhub/internal/services"
	"carhub/internal/transport/httpdto"
	carhub_errors "carhub/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Missing required fields"})
		return
	}

	token, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, carhub_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Missing required fields"})
		case errors.Is(err, carhub_errors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, httpdto.RegisterResponse{
		Message: "User registered successfully",
		Token:   token,
	})
}

// Login handles user authentication. Unknown email and wrong password get
// the same answer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Invalid credentials"})
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, carhub_errors.ErrInvalidInput), errors.Is(err, carhub_errors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Token: res.Token,
		User: httpdto.AuthUserDTO{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
		},
	})
}

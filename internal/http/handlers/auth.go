package handlers

import (
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Users *services.UserService
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Registration successful")
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.Users.Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Login successful")
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization required")
		return
	}
	userID, err := uuid.Parse(id.UserID)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid token")
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "")
}

// GET /api/auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, users, "")
}

// PUT /api/auth/users/:id/promote
func (h *AuthHandler) Promote(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.Users.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "User promoted to "+models.RoleAdmin)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-engine/internal/api/dto"
	"github.com/spec-kit/sla-engine/internal/auth"
	"github.com/spec-kit/sla-engine/internal/config"
	apperrors "github.com/spec-kit/sla-engine/pkg/util"
)

// AuthHandler issues service tokens for operational access.
type AuthHandler struct {
	tokens *auth.TokenManager
	cfg    config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{tokens: tokens, cfg: cfg}
}

// Login POST /auth/login. Verifies the ops password and issues an admin token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if h.cfg.AdminPasswordHash == "" {
		return apperrors.NewUnauthorized("ops login not configured")
	}
	if err := auth.ComparePassword(h.cfg.AdminPasswordHash, req.Password); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	subjectID := req.SubjectID
	if subjectID == "" {
		subjectID = "ops"
	}
	token, expiresAt, err := h.tokens.GenerateToken(subjectID, auth.RoleAdmin)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{Token: token, ExpiresAt: expiresAt}})
}

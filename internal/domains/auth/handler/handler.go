package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"contenthub-backend/internal/domains/auth/model"
	"contenthub-backend/internal/domains/auth/service"
	"contenthub-backend/internal/shared/response"
)

type AuthHandler struct {
	authService service.ServiceInterface
}

func NewAuthHandler(authService service.ServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// Exchange trades a gateway-verified profile for a token pair
// POST /api/v1/auth/token
func (h *AuthHandler) Exchange(c *gin.Context) {
	var req model.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, pair, err := h.authService.Exchange(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrBadExchangeSecret) {
			response.Unauthorized(c, "invalid exchange secret")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to exchange token")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":   user,
		"tokens": pair,
	})
}

// Refresh rotates a refresh token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRefreshToken) {
			response.Unauthorized(c, "invalid refresh token")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to refresh token")
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Logout revokes a refresh token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req model.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req); err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to log out")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

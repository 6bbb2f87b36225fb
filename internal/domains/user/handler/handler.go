package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/domains/user/service"
	"contenthub-backend/internal/shared/middleware"
	"contenthub-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser gets a public user profile
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to get user")
		return
	}
	if user == nil {
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, http.StatusOK, user)
}

// GetMe returns the authenticated user's own record
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		response.InternalServerError(c, "failed to get user")
		return
	}
	if user == nil {
		// Token outlived the account.
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account and everything it authored
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	deleted, err := h.userService.DeleteUser(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only delete your own account")
			return
		}
		response.InternalServerError(c, "failed to delete user")
		return
	}
	if !deleted {
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"contenthub-backend/internal/domains/comment/model"
	"contenthub-backend/internal/domains/comment/service"
	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/middleware"
	"contenthub-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

func pageFromQuery(c *gin.Context) shared.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(shared.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(shared.DefaultOffset)))
	return shared.Page{Limit: limit, Offset: offset}.Normalize()
}

// ListCommentsByPost lists comments on a post
// GET /api/v1/posts/:id/comments
func (h *CommentHandler) ListCommentsByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	page := pageFromQuery(c)

	comments, err := h.commentService.ListCommentsByPost(c.Request.Context(), postID, page)
	if err != nil {
		response.InternalServerError(c, "failed to list comments")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(comments),
	})
}

// ListCommentsByVideo lists comments on a video
// GET /api/v1/videos/:id/comments
func (h *CommentHandler) ListCommentsByVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	page := pageFromQuery(c)

	comments, err := h.commentService.ListCommentsByVideo(c.Request.Context(), videoID, page)
	if err != nil {
		response.InternalServerError(c, "failed to list comments")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(comments),
	})
}

// CreateComment creates a comment under a post or a video
// POST /api/v1/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), actor, req)
	if err != nil {
		if errors.Is(err, model.ErrNoParent) || errors.Is(err, model.ErrBothParents) || isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create comment")
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// UpdateComment patches a comment's content
// PATCH /api/v1/comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only edit your own comments")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to update comment")
		return
	}
	if comment == nil {
		response.NotFound(c, "comment not found")
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// DeleteComment deletes a comment
// DELETE /api/v1/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	deleted, err := h.commentService.DeleteComment(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only delete your own comments")
			return
		}
		response.InternalServerError(c, "failed to delete comment")
		return
	}
	if !deleted {
		response.NotFound(c, "comment not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

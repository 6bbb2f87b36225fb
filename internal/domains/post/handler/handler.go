package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"contenthub-backend/internal/domains/post/model"
	"contenthub-backend/internal/domains/post/service"
	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/middleware"
	"contenthub-backend/internal/shared/response"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// isValidationError reports whether err came from request validation.
func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// pageFromQuery reads limit/offset query params. Unparsable values fall
// back to the defaults rather than erroring.
func pageFromQuery(c *gin.Context) shared.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(shared.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(shared.DefaultOffset)))
	return shared.Page{Limit: limit, Offset: offset}.Normalize()
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPosts lists published posts
// GET /api/v1/posts?category=&limit=&offset=
func (h *PostHandler) ListPosts(c *gin.Context) {
	page := pageFromQuery(c)

	var (
		posts []model.PostWithAuthor
		err   error
	)
	if category := c.Query("category"); category != "" {
		posts, err = h.postService.ListPostsByCategory(c.Request.Context(), category, page)
	} else {
		posts, err = h.postService.ListPosts(c.Request.Context(), page)
	}
	if err != nil {
		response.InternalServerError(c, "failed to list posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(posts),
	})
}

// SearchPosts searches published posts
// GET /api/v1/posts/search?q=&limit=&offset=
func (h *PostHandler) SearchPosts(c *gin.Context) {
	page := pageFromQuery(c)

	posts, err := h.postService.SearchPosts(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		response.InternalServerError(c, "failed to search posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(posts),
	})
}

// GetPost gets a post by id
// GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to get post")
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ListPostsByAuthor lists an author's posts, drafts included
// GET /api/v1/authors/:id/posts
func (h *PostHandler) ListPostsByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	page := pageFromQuery(c)

	posts, err := h.postService.ListPostsByAuthor(c.Request.Context(), authorID, page)
	if err != nil {
		response.InternalServerError(c, "failed to list posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(posts),
	})
}

// =====================================================
// AUTHENTICATED ENDPOINTS
// =====================================================

// CreatePost creates a post owned by the caller
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), actor, req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// UpdatePost partially updates a post
// PATCH /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only edit your own posts")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to update post")
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}

	response.Success(c, http.StatusOK, post)
}

// DeletePost deletes a post
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	deleted, err := h.postService.DeletePost(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only delete your own posts")
			return
		}
		response.InternalServerError(c, "failed to delete post")
		return
	}
	if !deleted {
		response.NotFound(c, "post not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

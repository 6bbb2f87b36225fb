package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"contenthub-backend/internal/domains/video/model"
	"contenthub-backend/internal/domains/video/service"
	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/middleware"
	"contenthub-backend/internal/shared/response"
)

type VideoHandler struct {
	videoService service.ServiceInterface
}

func NewVideoHandler(videoService service.ServiceInterface) *VideoHandler {
	return &VideoHandler{videoService: videoService}
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

// ListVideos lists published videos
// GET /api/v1/videos?category=&limit=&offset=
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page := pageFromQuery(c)

	var (
		videos []model.VideoWithAuthor
		err    error
	)
	if category := c.Query("category"); category != "" {
		videos, err = h.videoService.ListVideosByCategory(c.Request.Context(), category, page)
	} else {
		videos, err = h.videoService.ListVideos(c.Request.Context(), page)
	}
	if err != nil {
		response.InternalServerError(c, "failed to list videos")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, videos, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(videos),
	})
}

// SearchVideos searches published videos
// GET /api/v1/videos/search?q=&limit=&offset=
func (h *VideoHandler) SearchVideos(c *gin.Context) {
	page := pageFromQuery(c)

	videos, err := h.videoService.SearchVideos(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		response.InternalServerError(c, "failed to search videos")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, videos, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(videos),
	})
}

// GetVideo gets a video by id
// GET /api/v1/videos/:id
func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	video, err := h.videoService.GetVideo(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to get video")
		return
	}
	if video == nil {
		response.NotFound(c, "video not found")
		return
	}

	response.Success(c, http.StatusOK, video)
}

// ListVideosByAuthor lists an author's videos, drafts included
// GET /api/v1/authors/:id/videos
func (h *VideoHandler) ListVideosByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	page := pageFromQuery(c)

	videos, err := h.videoService.ListVideosByAuthor(c.Request.Context(), authorID, page)
	if err != nil {
		response.InternalServerError(c, "failed to list videos")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, videos, &response.Meta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(videos),
	})
}

// CreateVideo creates a video owned by the caller
// POST /api/v1/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), actor, req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create video")
		return
	}

	response.Success(c, http.StatusCreated, video)
}

// UpdateVideo partially updates a video
// PATCH /api/v1/videos/:id
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	var req model.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only edit your own videos")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to update video")
		return
	}
	if video == nil {
		response.NotFound(c, "video not found")
		return
	}

	response.Success(c, http.StatusOK, video)
}

// DeleteVideo deletes a video
// DELETE /api/v1/videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	deleted, err := h.videoService.DeleteVideo(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			response.Forbidden(c, "you can only delete your own videos")
			return
		}
		response.InternalServerError(c, "failed to delete video")
		return
	}
	if !deleted {
		response.NotFound(c, "video not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

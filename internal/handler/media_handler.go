package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// MediaHandler handles REST API for the catalog, ratings, favorites and
// playlists.
type MediaHandler struct {
	svc service.MediaServicer
}

// NewMediaHandler creates a media handler.
func NewMediaHandler(svc service.MediaServicer) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// ListMedia godoc
// GET /media
func (h *MediaHandler) ListMedia(c *gin.Context) {
	var req model.MediaListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.GetMediaList(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetMedia godoc
// GET /media/:id
func (h *MediaHandler) GetMedia(c *gin.Context) {
	m, err := h.svc.GetMediaByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, m)
}

// CreateMedia godoc
// POST /media
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req model.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	m, err := h.svc.CreateMedia(c.Request.Context(), c.Query("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, m)
}

// UpdateMedia godoc
// PATCH /media/:id
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	var req model.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	m, err := h.svc.UpdateMedia(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, m)
}

// DeleteMedia godoc
// DELETE /media/:id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.svc.DeleteMedia(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchMedia godoc
// POST /media/search
func (h *MediaHandler) SearchMedia(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.SearchMedia(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Trending godoc
// GET /media/trending
func (h *MediaHandler) Trending(c *gin.Context) {
	items, err := h.svc.GetTrendingMedia(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Recommended godoc
// GET /media/recommended
func (h *MediaHandler) Recommended(c *gin.Context) {
	items, err := h.svc.GetRecommendedMedia(c.Request.Context(), c.Query("user_id"), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// IncrementViews godoc
// POST /media/:id/views
func (h *MediaHandler) IncrementViews(c *gin.Context) {
	if err := h.svc.IncrementViewCount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RateMedia godoc
// POST /media/:id/rate
func (h *MediaHandler) RateMedia(c *gin.Context) {
	var req model.RateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	m, err := h.svc.RateMedia(c.Request.Context(), c.Query("user_id"), c.Param("id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, m)
}

// ListCategories godoc
// GET /categories
func (h *MediaHandler) ListCategories(c *gin.Context) {
	cats, err := h.svc.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, cats)
}

// GetCategory godoc
// GET /categories/:id
func (h *MediaHandler) GetCategory(c *gin.Context) {
	cat, err := h.svc.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, cat)
}

// AddFavorite godoc
// POST /users/:id/favorites/:mediaId
func (h *MediaHandler) AddFavorite(c *gin.Context) {
	f, err := h.svc.AddToFavorites(c.Request.Context(), c.Param("id"), c.Param("mediaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, f)
}

// RemoveFavorite godoc
// DELETE /users/:id/favorites/:mediaId
func (h *MediaHandler) RemoveFavorite(c *gin.Context) {
	if err := h.svc.RemoveFromFavorites(c.Request.Context(), c.Param("id"), c.Param("mediaId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites godoc
// GET /users/:id/favorites
func (h *MediaHandler) ListFavorites(c *gin.Context) {
	favs, err := h.svc.GetFavorites(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, favs)
}

// CreatePlaylist godoc
// POST /users/:id/playlists
func (h *MediaHandler) CreatePlaylist(c *gin.Context) {
	var req model.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	p, err := h.svc.CreatePlaylist(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, p)
}

// ListPlaylists godoc
// GET /users/:id/playlists
func (h *MediaHandler) ListPlaylists(c *gin.Context) {
	ps, err := h.svc.GetUserPlaylists(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, ps)
}

// GetPlaylist godoc
// GET /playlists/:id
func (h *MediaHandler) GetPlaylist(c *gin.Context) {
	p, err := h.svc.GetPlaylistByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

// AddToPlaylist godoc
// POST /playlists/:id/media/:mediaId
func (h *MediaHandler) AddToPlaylist(c *gin.Context) {
	p, err := h.svc.AddToPlaylist(c.Request.Context(), c.Param("id"), c.Param("mediaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

// RemoveFromPlaylist godoc
// DELETE /playlists/:id/media/:mediaId
func (h *MediaHandler) RemoveFromPlaylist(c *gin.Context) {
	p, err := h.svc.RemoveFromPlaylist(c.Request.Context(), c.Param("id"), c.Param("mediaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

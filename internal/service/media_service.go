package service

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

// MediaServicer is the catalog contract consumed by handlers.
type MediaServicer interface {
	GetMediaList(ctx context.Context, req model.MediaListRequest) (model.MediaListResponse, error)
	GetMediaByID(ctx context.Context, mediaID string) (model.Media, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (model.Category, error)
	CreateMedia(ctx context.Context, userID string, req model.CreateMediaRequest) (model.Media, error)
	UpdateMedia(ctx context.Context, mediaID string, req model.UpdateMediaRequest) (model.Media, error)
	DeleteMedia(ctx context.Context, mediaID string) error
	SearchMedia(ctx context.Context, req model.SearchRequest) (model.SearchResponse, error)
	GetTrendingMedia(ctx context.Context, limit int) ([]model.Media, error)
	GetRecommendedMedia(ctx context.Context, userID string, limit int) ([]model.Media, error)
	IncrementViewCount(ctx context.Context, mediaID string) error
	RateMedia(ctx context.Context, userID, mediaID string, rating float64) (model.Media, error)
	AddToFavorites(ctx context.Context, userID, mediaID string) (model.Favorite, error)
	RemoveFromFavorites(ctx context.Context, userID, mediaID string) error
	GetFavorites(ctx context.Context, userID string) ([]model.Favorite, error)
	CreatePlaylist(ctx context.Context, userID string, req model.CreatePlaylistRequest) (model.Playlist, error)
	AddToPlaylist(ctx context.Context, playlistID, mediaID string) (model.Playlist, error)
	RemoveFromPlaylist(ctx context.Context, playlistID, mediaID string) (model.Playlist, error)
	GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error)
	GetPlaylistByID(ctx context.Context, playlistID string) (model.Playlist, error)
}

// MediaService manages the catalog, ratings, favorites and playlists.
type MediaService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger
}

// NewMediaService creates the media service.
func NewMediaService(st *store.Store, cfg *config.Config, log *zap.Logger) *MediaService {
	return &MediaService{store: st, cfg: cfg, log: log}
}

// GetMediaList filters, sorts and paginates the catalog. Filters are
// conjunctive; sorting is always descending and stable for ties.
func (s *MediaService) GetMediaList(ctx context.Context, req model.MediaListRequest) (model.MediaListResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	filtered := s.store.ListMedia()

	if req.Type != "" {
		filtered = slices.DeleteFunc(filtered, func(m model.Media) bool {
			return m.Type != req.Type
		})
	}
	if req.Genre != "" {
		filtered = slices.DeleteFunc(filtered, func(m model.Media) bool {
			return !slices.Contains(m.Genre, req.Genre)
		})
	}
	if req.Search != "" {
		q := strings.ToLower(req.Search)
		filtered = slices.DeleteFunc(filtered, func(m model.Media) bool {
			return !matchesText(m, q, false)
		})
	}

	switch req.SortBy {
	case model.SortByDate:
		slices.SortStableFunc(filtered, func(a, b model.Media) int {
			return b.UploadedAt.Compare(a.UploadedAt)
		})
	case model.SortByViews:
		slices.SortStableFunc(filtered, func(a, b model.Media) int {
			switch {
			case b.TotalViews > a.TotalViews:
				return 1
			case b.TotalViews < a.TotalViews:
				return -1
			default:
				return 0
			}
		})
	case model.SortByRating:
		slices.SortStableFunc(filtered, func(a, b model.Media) int {
			switch {
			case b.Rating > a.Rating:
				return 1
			case b.Rating < a.Rating:
				return -1
			default:
				return 0
			}
		})
	}

	page, pagination := model.Paginate(filtered, req.Page, req.PageSize, s.cfg.DefaultPageSize)
	return model.MediaListResponse{Data: page, Pagination: pagination}, nil
}

// GetMediaByID returns a catalog item.
func (s *MediaService) GetMediaByID(ctx context.Context, mediaID string) (model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)
	m, ok := s.store.GetMedia(mediaID)
	if !ok {
		return model.Media{}, errs.ErrNotFound
	}
	return m, nil
}

// GetCategories returns the browsing categories.
func (s *MediaService) GetCategories(ctx context.Context) ([]model.Category, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.ListCategories(), nil
}

// GetCategoryByID returns one category.
func (s *MediaService) GetCategoryByID(ctx context.Context, categoryID string) (model.Category, error) {
	simulate(ctx, s.cfg.SimLatency)
	c, ok := s.store.GetCategory(categoryID)
	if !ok {
		return model.Category{}, errs.ErrNotFound
	}
	return c, nil
}

// CreateMedia adds an unapproved catalog entry owned by userID.
func (s *MediaService) CreateMedia(ctx context.Context, userID string, req model.CreateMediaRequest) (model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)

	m := model.Media{
		ID:          "media-" + uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Artist:      req.Artist,
		Director:    req.Director,
		Genre:       req.Genre,
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
		IsExplicit:  req.IsExplicit,
		IsApproved:  false, // requires moderation
		UploadedBy:  userID,
		UploadedAt:  time.Now(),
		Quality:     []model.MediaQuality{},
	}
	s.store.AppendMedia(m)
	s.log.Info("media created", zap.String("media_id", m.ID), zap.String("user_id", userID))
	return m, nil
}

// UpdateMedia applies the set fields of req.
func (s *MediaService) UpdateMedia(ctx context.Context, mediaID string, req model.UpdateMediaRequest) (model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)

	m, ok := s.store.UpdateMedia(mediaID, func(m *model.Media) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Genre != nil {
			m.Genre = req.Genre
		}
		if req.IsExplicit != nil {
			m.IsExplicit = *req.IsExplicit
		}
	})
	if !ok {
		return model.Media{}, errs.ErrNotFound
	}
	return m, nil
}

// DeleteMedia removes a catalog item.
func (s *MediaService) DeleteMedia(ctx context.Context, mediaID string) error {
	simulate(ctx, s.cfg.SimLatency)
	if !s.store.DeleteMedia(mediaID) {
		return errs.ErrNotFound
	}
	return nil
}

// SearchMedia runs the full-text search with genre, type and rating-range
// filters and reports the observed query duration in milliseconds.
func (s *MediaService) SearchMedia(ctx context.Context, req model.SearchRequest) (model.SearchResponse, error) {
	simulate(ctx, s.cfg.SimLatency)
	started := time.Now()

	results := s.store.ListMedia()

	if req.Type != "" {
		results = slices.DeleteFunc(results, func(m model.Media) bool {
			return m.Type != req.Type
		})
	}
	if len(req.Genre) > 0 {
		// OR across requested genres: any overlap matches.
		results = slices.DeleteFunc(results, func(m model.Media) bool {
			for _, g := range m.Genre {
				if slices.Contains(req.Genre, g) {
					return false
				}
			}
			return true
		})
	}
	if req.Rating != nil {
		results = slices.DeleteFunc(results, func(m model.Media) bool {
			return m.Rating < req.Rating.Min || m.Rating > req.Rating.Max
		})
	}

	q := strings.ToLower(req.Query)
	results = slices.DeleteFunc(results, func(m model.Media) bool {
		return !matchesText(m, q, true)
	})

	page, pagination := model.Paginate(results, req.Page, req.PageSize, s.cfg.DefaultPageSize)
	return model.SearchResponse{
		Results:       page,
		Pagination:    pagination,
		ExecutionTime: time.Since(started).Milliseconds(),
	}, nil
}

// GetTrendingMedia returns the top items by total views. The catalog's own
// order is never disturbed: sorting happens on a copy.
func (s *MediaService) GetTrendingMedia(ctx context.Context, limit int) ([]model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}

	all := s.store.ListMedia()
	slices.SortStableFunc(all, func(a, b model.Media) int {
		switch {
		case b.TotalViews > a.TotalViews:
			return 1
		case b.TotalViews < a.TotalViews:
			return -1
		default:
			return 0
		}
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetRecommendedMedia scores by rating*views. Global popularity only; the
// userID carries no personalization in the mock backend.
func (s *MediaService) GetRecommendedMedia(ctx context.Context, _ string, limit int) ([]model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}

	all := s.store.ListMedia()
	slices.SortStableFunc(all, func(a, b model.Media) int {
		as := a.Rating * float64(a.TotalViews)
		bs := b.Rating * float64(b.TotalViews)
		switch {
		case bs > as:
			return 1
		case bs < as:
			return -1
		default:
			return 0
		}
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// IncrementViewCount bumps the view counter; unknown IDs are a no-op.
func (s *MediaService) IncrementViewCount(ctx context.Context, mediaID string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.UpdateMedia(mediaID, func(m *model.Media) {
		m.TotalViews++
	})
	return nil
}

// RateMedia records the user's rating (overwriting their prior one) and
// recomputes the item's displayed rating as the mean over that item's
// ratings, rounded to one decimal.
func (s *MediaService) RateMedia(ctx context.Context, userID, mediaID string, rating float64) (model.Media, error) {
	simulate(ctx, s.cfg.SimLatency)

	if rating < 0 || rating > 5 {
		return model.Media{}, errs.ErrInvalidRating
	}
	if _, ok := s.store.GetMedia(mediaID); !ok {
		return model.Media{}, errs.ErrNotFound
	}

	mean := s.store.SetRating(userID, mediaID, rating)
	m, _ := s.store.UpdateMedia(mediaID, func(m *model.Media) {
		m.Rating = math.Round(mean*10) / 10
	})
	return m, nil
}

// AddToFavorites favorites a media item; repeated adds keep one entry.
func (s *MediaService) AddToFavorites(ctx context.Context, userID, mediaID string) (model.Favorite, error) {
	simulate(ctx, s.cfg.SimLatency)

	m, ok := s.store.GetMedia(mediaID)
	if !ok {
		return model.Favorite{}, errs.ErrNotFound
	}
	f := model.Favorite{
		ID:        "fav-" + uuid.New().String(),
		UserID:    userID,
		MediaID:   mediaID,
		MediaType: m.Type,
		CreatedAt: time.Now(),
	}
	s.store.AddFavorite(f)
	return f, nil
}

// RemoveFromFavorites is a no-op when the item was not favorited.
func (s *MediaService) RemoveFromFavorites(ctx context.Context, userID, mediaID string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.RemoveFavorite(userID, mediaID)
	return nil
}

// GetFavorites returns the user's favorites.
func (s *MediaService) GetFavorites(ctx context.Context, userID string) ([]model.Favorite, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.ListFavorites(userID), nil
}

// CreatePlaylist creates an empty private playlist.
func (s *MediaService) CreatePlaylist(ctx context.Context, userID string, req model.CreatePlaylistRequest) (model.Playlist, error) {
	simulate(ctx, s.cfg.SimLatency)

	now := time.Now()
	p := model.Playlist{
		ID:          "playlist-" + uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		MediaIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.PutPlaylist(p)
	return p, nil
}

// AddToPlaylist appends a media item once; TotalDuration grows by the
// item's duration only on a real insert.
func (s *MediaService) AddToPlaylist(ctx context.Context, playlistID, mediaID string) (model.Playlist, error) {
	simulate(ctx, s.cfg.SimLatency)

	m, ok := s.store.GetMedia(mediaID)
	if !ok {
		return model.Playlist{}, errs.ErrNotFound
	}
	p, ok := s.store.UpdatePlaylist(playlistID, func(p *model.Playlist) {
		if slices.Contains(p.MediaIDs, mediaID) {
			return
		}
		p.MediaIDs = append(p.MediaIDs, mediaID)
		p.TotalDuration += m.Duration
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return model.Playlist{}, errs.ErrNotFound
	}
	return p, nil
}

// RemoveFromPlaylist drops a media item; removing an absent one changes
// nothing.
func (s *MediaService) RemoveFromPlaylist(ctx context.Context, playlistID, mediaID string) (model.Playlist, error) {
	simulate(ctx, s.cfg.SimLatency)

	m, mediaKnown := s.store.GetMedia(mediaID)
	p, ok := s.store.UpdatePlaylist(playlistID, func(p *model.Playlist) {
		i := slices.Index(p.MediaIDs, mediaID)
		if i < 0 {
			return
		}
		p.MediaIDs = slices.Delete(p.MediaIDs, i, i+1)
		if mediaKnown {
			p.TotalDuration -= m.Duration
		}
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return model.Playlist{}, errs.ErrNotFound
	}
	return p, nil
}

// GetUserPlaylists returns the playlists owned by a user.
func (s *MediaService) GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.ListPlaylistsByUser(userID), nil
}

// GetPlaylistByID returns one playlist.
func (s *MediaService) GetPlaylistByID(ctx context.Context, playlistID string) (model.Playlist, error) {
	simulate(ctx, s.cfg.SimLatency)
	p, ok := s.store.GetPlaylist(playlistID)
	if !ok {
		return model.Playlist{}, errs.ErrNotFound
	}
	return p, nil
}

// matchesText reports whether the lower-cased query hits title, description
// or artist; search additionally scans genres.
func matchesText(m model.Media, q string, includeGenres bool) bool {
	if strings.Contains(strings.ToLower(m.Title), q) ||
		strings.Contains(strings.ToLower(m.Description), q) ||
		strings.Contains(strings.ToLower(m.Artist), q) {
		return true
	}
	if includeGenres {
		for _, g := range m.Genre {
			if strings.Contains(strings.ToLower(g), q) {
				return true
			}
		}
	}
	return false
}

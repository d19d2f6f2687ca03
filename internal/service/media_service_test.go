package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

func newMediaService() *MediaService {
	return NewMediaService(store.NewSeeded(), testConfig(), zap.NewNop())
}

func TestGetMediaListFiltersAreConjunctive(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	resp, err := svc.GetMediaList(ctx, model.MediaListRequest{
		Type:  model.MediaTypeMovie,
		Genre: "thriller",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data)
	for _, m := range resp.Data {
		assert.Equal(t, model.MediaTypeMovie, m.Type)
		assert.Contains(t, m.Genre, "thriller")
	}
}

func TestGetMediaListSortByViewsDescending(t *testing.T) {
	svc := newMediaService()

	resp, err := svc.GetMediaList(context.Background(), model.MediaListRequest{SortBy: model.SortByViews})
	require.NoError(t, err)
	require.Greater(t, len(resp.Data), 1)
	for i := 1; i < len(resp.Data); i++ {
		assert.GreaterOrEqual(t, resp.Data[i-1].TotalViews, resp.Data[i].TotalViews)
	}
}

func TestGetMediaListPaginationOutOfRange(t *testing.T) {
	svc := newMediaService()

	resp, err := svc.GetMediaList(context.Background(), model.MediaListRequest{Page: 99, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 6, resp.Pagination.Total)
	assert.Equal(t, 99, resp.Pagination.Page)
}

func TestSearchMediaGenreSetMatchesAnyOverlap(t *testing.T) {
	svc := newMediaService()

	resp, err := svc.SearchMedia(context.Background(), model.SearchRequest{
		Query: "",
		Genre: []string{"thriller", "folk"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)
	for _, m := range resp.Results {
		overlap := false
		for _, g := range m.Genre {
			if g == "thriller" || g == "folk" {
				overlap = true
			}
		}
		assert.True(t, overlap, "result %s has no requested genre", m.ID)
	}
	assert.GreaterOrEqual(t, resp.ExecutionTime, int64(0))
}

func TestSearchMediaRatingRange(t *testing.T) {
	svc := newMediaService()

	resp, err := svc.SearchMedia(context.Background(), model.SearchRequest{
		Query:  "",
		Rating: &model.RatingRange{Min: 4.5, Max: 5},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)
	for _, m := range resp.Results {
		assert.GreaterOrEqual(t, m.Rating, 4.5)
	}
}

func TestSearchMediaTextOverTitleAndArtist(t *testing.T) {
	svc := newMediaService()

	resp, err := svc.SearchMedia(context.Background(), model.SearchRequest{Query: "lighthouse"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "media-002", resp.Results[0].ID)

	resp, err = svc.SearchMedia(context.Background(), model.SearchRequest{Query: "hollow pines"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "media-005", resp.Results[0].ID)
}

func TestTrendingDoesNotDisturbCatalogOrder(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	before, err := svc.GetMediaList(ctx, model.MediaListRequest{})
	require.NoError(t, err)

	top, err := svc.GetTrendingMedia(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "media-006", top[0].ID)

	after, err := svc.GetMediaList(ctx, model.MediaListRequest{})
	require.NoError(t, err)
	for i := range before.Data {
		assert.Equal(t, before.Data[i].ID, after.Data[i].ID)
	}
}

func TestRateMediaValidatesRangeAndAverages(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	_, err := svc.RateMedia(ctx, "user-001", "media-001", 6)
	assert.ErrorIs(t, err, errs.ErrInvalidRating)

	m, err := svc.RateMedia(ctx, "user-001", "media-001", 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.Rating)

	m, err = svc.RateMedia(ctx, "user-002", "media-001", 5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, m.Rating)

	// Re-rating overwrites, it does not add another sample.
	m, err = svc.RateMedia(ctx, "user-001", "media-001", 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, m.Rating)

	_, err = svc.RateMedia(ctx, "user-001", "media-missing", 3)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFavoritesRoundTrip(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	f, err := svc.AddToFavorites(ctx, "user-001", "media-002")
	require.NoError(t, err)
	assert.Equal(t, model.MediaTypeMovie, f.MediaType)

	// Adding twice keeps a single entry.
	_, err = svc.AddToFavorites(ctx, "user-001", "media-002")
	require.NoError(t, err)

	favs, err := svc.GetFavorites(ctx, "user-001")
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	require.NoError(t, svc.RemoveFromFavorites(ctx, "user-001", "media-002"))
	// Removing again is a no-op.
	require.NoError(t, svc.RemoveFromFavorites(ctx, "user-001", "media-002"))

	favs, err = svc.GetFavorites(ctx, "user-001")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestPlaylistAddRemoveTracksDuration(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	p, err := svc.CreatePlaylist(ctx, "user-001", model.CreatePlaylistRequest{Name: "Road Trip"})
	require.NoError(t, err)
	assert.Empty(t, p.MediaIDs)

	p, err = svc.AddToPlaylist(ctx, p.ID, "media-001")
	require.NoError(t, err)
	assert.Equal(t, 245, p.TotalDuration)

	// Duplicate add changes nothing.
	p, err = svc.AddToPlaylist(ctx, p.ID, "media-001")
	require.NoError(t, err)
	assert.Len(t, p.MediaIDs, 1)
	assert.Equal(t, 245, p.TotalDuration)

	p, err = svc.AddToPlaylist(ctx, p.ID, "media-005")
	require.NoError(t, err)
	assert.Equal(t, 245+198, p.TotalDuration)

	p, err = svc.RemoveFromPlaylist(ctx, p.ID, "media-001")
	require.NoError(t, err)
	assert.Equal(t, 198, p.TotalDuration)
	assert.Equal(t, []string{"media-005"}, p.MediaIDs)

	// Removing an absent item is a no-op.
	p, err = svc.RemoveFromPlaylist(ctx, p.ID, "media-001")
	require.NoError(t, err)
	assert.Len(t, p.MediaIDs, 1)

	lists, err := svc.GetUserPlaylists(ctx, "user-001")
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestIncrementViewCount(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	before, err := svc.GetMediaByID(ctx, "media-003")
	require.NoError(t, err)

	require.NoError(t, svc.IncrementViewCount(ctx, "media-003"))

	after, err := svc.GetMediaByID(ctx, "media-003")
	require.NoError(t, err)
	assert.Equal(t, before.TotalViews+1, after.TotalViews)

	// Unknown IDs are silently ignored.
	assert.NoError(t, svc.IncrementViewCount(ctx, "media-missing"))
}

func TestCreateUpdateDeleteMedia(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	m, err := svc.CreateMedia(ctx, "user-002", model.CreateMediaRequest{
		Title: "New Horizons",
		Type:  model.MediaTypeMovie,
		Genre: []string{"documentary"},
	})
	require.NoError(t, err)
	assert.False(t, m.IsApproved)

	title := "New Horizons: Director's Cut"
	updated, err := svc.UpdateMedia(ctx, m.ID, model.UpdateMediaRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, []string{"documentary"}, updated.Genre)

	require.NoError(t, svc.DeleteMedia(ctx, m.ID))
	_, err = svc.GetMediaByID(ctx, m.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteMedia(ctx, m.ID), errs.ErrNotFound)
}

func TestGetCategories(t *testing.T) {
	svc := newMediaService()
	ctx := context.Background()

	cats, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 4)

	cat, err := svc.GetCategoryByID(ctx, "cat-002")
	require.NoError(t, err)
	assert.Equal(t, "Movies", cat.Name)

	_, err = svc.GetCategoryByID(ctx, "cat-missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

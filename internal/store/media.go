package store

import (
	"slices"

	"github.com/streamvault/platform-service/internal/model"
)

// ListMedia returns a copy of the catalog in insertion order.
func (s *Store) ListMedia() []model.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.media)
}

// GetMedia returns a catalog item by ID.
func (s *Store) GetMedia(id string) (model.Media, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.media {
		if m.ID == id {
			return m, true
		}
	}
	return model.Media{}, false
}

// AppendMedia adds a new catalog item.
func (s *Store) AppendMedia(m model.Media) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media = append(s.media, m)
}

// UpdateMedia applies fn to the stored item under the lock.
func (s *Store) UpdateMedia(id string, fn func(*model.Media)) (model.Media, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.media {
		if s.media[i].ID == id {
			fn(&s.media[i])
			return s.media[i], true
		}
	}
	return model.Media{}, false
}

// DeleteMedia removes a catalog item. Reports whether it existed.
func (s *Store) DeleteMedia(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.media {
		if s.media[i].ID == id {
			s.media = slices.Delete(s.media, i, i+1)
			return true
		}
	}
	return false
}

// ListCategories returns the browsing categories.
func (s *Store) ListCategories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// GetCategory returns a category by ID.
func (s *Store) GetCategory(id string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// SetRating records one user's rating of one media item, overwriting any
// prior rating by the same user, and returns the new mean over all ratings
// recorded for that media.
func (s *Store) SetRating(userID, mediaID string, rating float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.ratings[mediaID]
	if !ok {
		byUser = map[string]float64{}
		s.ratings[mediaID] = byUser
	}
	byUser[userID] = rating

	var sum float64
	for _, r := range byUser {
		sum += r
	}
	return sum / float64(len(byUser))
}

// AddFavorite records a favorite; adding twice keeps a single entry.
func (s *Store) AddFavorite(f model.Favorite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byMedia, ok := s.favorites[f.UserID]
	if !ok {
		byMedia = map[string]model.Favorite{}
		s.favorites[f.UserID] = byMedia
	}
	if _, exists := byMedia[f.MediaID]; !exists {
		byMedia[f.MediaID] = f
	}
}

// RemoveFavorite deletes a favorite; removing an absent one is a no-op.
func (s *Store) RemoveFavorite(userID, mediaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if byMedia, ok := s.favorites[userID]; ok {
		delete(byMedia, mediaID)
	}
}

// ListFavorites returns a user's favorites.
func (s *Store) ListFavorites(userID string) []model.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Favorite, 0, len(s.favorites[userID]))
	for _, f := range s.favorites[userID] {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b model.Favorite) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// PutPlaylist inserts or replaces a playlist.
func (s *Store) PutPlaylist(p model.Playlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.MediaIDs = slices.Clone(p.MediaIDs)
	s.playlists[p.ID] = p
}

// GetPlaylist returns a playlist by ID.
func (s *Store) GetPlaylist(id string) (model.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if ok {
		p.MediaIDs = slices.Clone(p.MediaIDs)
	}
	return p, ok
}

// UpdatePlaylist applies fn to the stored playlist under the lock.
func (s *Store) UpdatePlaylist(id string, fn func(*model.Playlist)) (model.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return model.Playlist{}, false
	}
	fn(&p)
	s.playlists[id] = p
	p.MediaIDs = slices.Clone(p.MediaIDs)
	return p, true
}

// ListPlaylistsByUser returns the playlists owned by a user.
func (s *Store) ListPlaylistsByUser(userID string) []model.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Playlist
	for _, p := range s.playlists {
		if p.UserID == userID {
			p.MediaIDs = slices.Clone(p.MediaIDs)
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b model.Playlist) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

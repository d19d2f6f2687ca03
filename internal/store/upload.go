package store

import (
	"slices"

	"github.com/streamvault/platform-service/internal/model"
)

// GetUpload returns an upload by ID.
func (s *Store) GetUpload(id string) (model.MediaUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[id]
	return u, ok
}

// PutUpload inserts or replaces an upload.
func (s *Store) PutUpload(u model.MediaUpload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[u.ID] = u
}

// UpdateUpload applies fn to the stored upload under the lock.
func (s *Store) UpdateUpload(id string, fn func(*model.MediaUpload)) (model.MediaUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[id]
	if !ok {
		return model.MediaUpload{}, false
	}
	fn(&u)
	s.uploads[id] = u
	return u, true
}

// DeleteUpload removes an upload and its moderation result together.
func (s *Store) DeleteUpload(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploads, id)
	delete(s.moderations, id)
}

// ListUploadsByUser returns a user's uploads ordered by initiation time.
func (s *Store) ListUploadsByUser(userID string) []model.MediaUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.MediaUpload
	for _, u := range s.uploads {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b model.MediaUpload) int {
		return a.UploadedAt.Compare(b.UploadedAt)
	})
	return out
}

// GetModeration returns the moderation result for an upload.
func (s *Store) GetModeration(uploadID string) (model.ModerationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.moderations[uploadID]
	return m, ok
}

// PutModeration inserts or replaces a moderation result.
func (s *Store) PutModeration(m model.ModerationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moderations[m.UploadID] = m
}

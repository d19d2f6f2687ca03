package store

import (
	"slices"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
)

// CreateSessionIfUnderLimit atomically checks the per-user active session
// count and inserts the session. Holding the check and the insert under one
// lock is what keeps the limit invariant under concurrent starts.
func (s *Store) CreateSessionIfUnderLimit(sess model.StreamingSession, maxActive int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := 0
	for _, existing := range s.sessions {
		if existing.UserID == sess.UserID && existing.Status == model.SessionStatusActive {
			active++
		}
	}
	if active >= maxActive {
		return errs.ErrConcurrentLimit
	}
	s.sessions[sess.ID] = sess
	return nil
}

// CountActiveSessions returns the number of active sessions for a user.
func (s *Store) CountActiveSessions(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.Status == model.SessionStatusActive {
			count++
		}
	}
	return count
}

// GetStreamSession returns a session by ID.
func (s *Store) GetStreamSession(id string) (model.StreamingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// UpdateStreamSession applies fn to the stored session under the lock.
func (s *Store) UpdateStreamSession(id string, fn func(*model.StreamingSession)) (model.StreamingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return model.StreamingSession{}, false
	}
	fn(&sess)
	s.sessions[id] = sess
	return sess, true
}

// DeleteStreamSession removes a session record.
func (s *Store) DeleteStreamSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// ListActiveSessions returns a user's active sessions.
func (s *Store) ListActiveSessions(userID string) []model.StreamingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.StreamingSession
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.Status == model.SessionStatusActive {
			out = append(out, sess)
		}
	}
	slices.SortFunc(out, func(a, b model.StreamingSession) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out
}

// AppendHistory records a viewing history row.
func (s *Store) AppendHistory(h model.ViewingHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, h)
}

// ListHistoryByUser returns a user's history, most recent first.
func (s *Store) ListHistoryByUser(userID string) []model.ViewingHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ViewingHistory
	for _, h := range s.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	slices.SortFunc(out, func(a, b model.ViewingHistory) int {
		return b.WatchedAt.Compare(a.WatchedAt)
	})
	return out
}

// SetResumePoint overwrites the resume point for a (user, media) pair.
func (s *Store) SetResumePoint(userID, mediaID string, position int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumePoints[resumeKey(userID, mediaID)] = position
}

// GetResumePoint returns the stored resume point, defaulting to 0.
func (s *Store) GetResumePoint(userID, mediaID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumePoints[resumeKey(userID, mediaID)]
}

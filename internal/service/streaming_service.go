package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

const defaultMediaDuration = 3600 // seconds, used when the catalog has none

// StreamingServicer is the playback contract consumed by handlers.
type StreamingServicer interface {
	StartStream(ctx context.Context, req model.StartStreamRequest) (model.StartStreamResponse, error)
	CheckConcurrentStreamLimit(ctx context.Context, userID string) (bool, error)
	UpdateStreamProgress(ctx context.Context, sessionID string, req model.StreamProgressRequest) error
	EndStream(ctx context.Context, sessionID string, req model.EndStreamRequest) (model.ViewingHistory, error)
	GetStreamStatus(ctx context.Context, sessionID string) (model.StreamingSession, error)
	GetViewingHistory(ctx context.Context, userID string, page, pageSize int) ([]model.ViewingHistory, model.Pagination, error)
	GetResumePoint(ctx context.Context, userID, mediaID string) (int, error)
	GetActiveStreams(ctx context.Context, userID string) ([]model.StreamingSession, error)
}

// StreamingService manages playback sessions, viewing history and resume
// points.
type StreamingService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger
}

// NewStreamingService creates the streaming service.
func NewStreamingService(st *store.Store, cfg *config.Config, log *zap.Logger) *StreamingService {
	return &StreamingService{store: st, cfg: cfg, log: log}
}

// StartStream opens a playback session, enforcing the per-user concurrent
// stream limit, and resumes from the user's last position on that media.
func (s *StreamingService) StartStream(ctx context.Context, req model.StartStreamRequest) (model.StartStreamResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	duration := defaultMediaDuration
	if m, ok := s.store.GetMedia(req.MediaID); ok && m.Duration > 0 {
		duration = m.Duration
	}
	resume := s.store.GetResumePoint(req.UserID, req.MediaID)

	quality := req.Quality
	if quality == "" {
		quality = "720p"
	}
	sess := model.StreamingSession{
		ID:              "session-" + uuid.New().String(),
		UserID:          req.UserID,
		MediaID:         req.MediaID,
		DeviceID:        req.DeviceID,
		Status:          model.SessionStatusActive,
		CurrentPosition: resume,
		Quality:         quality,
		StartTime:       time.Now(),
	}
	if err := s.store.CreateSessionIfUnderLimit(sess, s.cfg.StreamMaxConcurrent); err != nil {
		s.log.Warn("concurrent stream limit reached",
			zap.String("user_id", req.UserID),
			zap.Int("limit", s.cfg.StreamMaxConcurrent))
		return model.StartStreamResponse{}, err
	}
	s.log.Info("stream started",
		zap.String("session_id", sess.ID),
		zap.String("user_id", req.UserID),
		zap.String("media_id", req.MediaID))

	return model.StartStreamResponse{
		SessionID:       sess.ID,
		StreamURL:       fmt.Sprintf("https://stream.streamvault.local/%s/manifest.m3u8", req.MediaID),
		Duration:        duration,
		CurrentPosition: resume,
	}, nil
}

// CheckConcurrentStreamLimit reports whether the user may open another
// session.
func (s *StreamingService) CheckConcurrentStreamLimit(ctx context.Context, userID string) (bool, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.CountActiveSessions(userID) < s.cfg.StreamMaxConcurrent, nil
}

// UpdateStreamProgress records the player position. Unknown sessions are a
// silent no-op so a late heartbeat after session cleanup does not error.
func (s *StreamingService) UpdateStreamProgress(ctx context.Context, sessionID string, req model.StreamProgressRequest) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.UpdateStreamSession(sessionID, func(sess *model.StreamingSession) {
		sess.CurrentPosition = req.CurrentPosition
		if req.Quality != "" {
			sess.Quality = req.Quality
		}
	})
	return nil
}

// EndStream closes a session, writes the viewing history row, saves the
// resume point (unless playback completed), and schedules the session record
// for removal after the grace period.
func (s *StreamingService) EndStream(ctx context.Context, sessionID string, req model.EndStreamRequest) (model.ViewingHistory, error) {
	simulate(ctx, s.cfg.SimLatency)

	sess, ok := s.store.GetStreamSession(sessionID)
	if !ok {
		return model.ViewingHistory{}, errs.ErrNotFound
	}

	duration := defaultMediaDuration
	if m, ok := s.store.GetMedia(sess.MediaID); ok && m.Duration > 0 {
		duration = m.Duration
	}

	completion := 100.0
	if req.Reason != model.EndReasonCompleted {
		completion = float64(req.WatchDuration) / float64(duration) * 100
		if completion > 100 {
			completion = 100
		}
		if completion < 0 {
			completion = 0
		}
	}

	now := time.Now()
	status := model.SessionStatusStopped
	if req.Reason == model.EndReasonCompleted {
		status = model.SessionStatusCompleted
	}
	s.store.UpdateStreamSession(sessionID, func(sess *model.StreamingSession) {
		sess.Status = status
		sess.EndTime = &now
		sess.TotalWatchTime = req.WatchDuration
	})

	if req.Reason == model.EndReasonCompleted {
		s.store.SetResumePoint(sess.UserID, sess.MediaID, 0)
	} else {
		s.store.SetResumePoint(sess.UserID, sess.MediaID, req.WatchDuration)
	}

	h := model.ViewingHistory{
		ID:                   "history-" + uuid.New().String(),
		UserID:               sess.UserID,
		MediaID:              sess.MediaID,
		WatchedAt:            now,
		WatchDuration:        req.WatchDuration,
		CompletionPercentage: completion,
	}
	s.store.AppendHistory(h)

	// Ended sessions stay queryable briefly, then disappear.
	time.AfterFunc(s.cfg.SessionGracePeriod, func() {
		s.store.DeleteStreamSession(sessionID)
	})

	s.log.Info("stream ended",
		zap.String("session_id", sessionID),
		zap.String("reason", string(req.Reason)))
	return h, nil
}

// GetStreamStatus returns a session by ID.
func (s *StreamingService) GetStreamStatus(ctx context.Context, sessionID string) (model.StreamingSession, error) {
	simulate(ctx, s.cfg.SimLatency)
	sess, ok := s.store.GetStreamSession(sessionID)
	if !ok {
		return model.StreamingSession{}, errs.ErrNotFound
	}
	return sess, nil
}

// GetViewingHistory returns the user's history, most recent first, paginated.
func (s *StreamingService) GetViewingHistory(ctx context.Context, userID string, page, pageSize int) ([]model.ViewingHistory, model.Pagination, error) {
	simulate(ctx, s.cfg.SimLatency)
	all := s.store.ListHistoryByUser(userID)
	items, pagination := model.Paginate(all, page, pageSize, s.cfg.DefaultPageSize)
	return items, pagination, nil
}

// GetResumePoint returns the saved position for a (user, media) pair, 0 when
// none.
func (s *StreamingService) GetResumePoint(ctx context.Context, userID, mediaID string) (int, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.GetResumePoint(userID, mediaID), nil
}

// GetActiveStreams returns the user's active sessions.
func (s *StreamingService) GetActiveStreams(ctx context.Context, userID string) ([]model.StreamingSession, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.ListActiveSessions(userID), nil
}

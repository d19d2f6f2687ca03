package model

import "time"

// SessionStatus represents streaming session state.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusStopped   SessionStatus = "stopped"
)

// StreamingSession is one playback session on one device.
type StreamingSession struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	MediaID         string        `json:"media_id"`
	DeviceID        string        `json:"device_id"`
	Status          SessionStatus `json:"status"`
	CurrentPosition int           `json:"current_position"` // seconds
	Quality         string        `json:"quality"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         *time.Time    `json:"end_time,omitempty"`
	TotalWatchTime  int           `json:"total_watch_time"`
}

// ViewingHistory is written when a session ends.
type ViewingHistory struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	MediaID              string    `json:"media_id"`
	WatchedAt            time.Time `json:"watched_at"`
	WatchDuration        int       `json:"watch_duration"`
	CompletionPercentage float64   `json:"completion_percentage"` // 0-100
}

// EndReason is why a session ended.
type EndReason string

const (
	EndReasonCompleted EndReason = "completed"
	EndReasonPaused    EndReason = "paused"
	EndReasonStopped   EndReason = "stopped"
)

// StartStreamRequest is the body for POST /streams.
type StartStreamRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	MediaID  string `json:"media_id" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
	Quality  string `json:"quality"`
}

// StartStreamResponse points the player at the manifest and resume position.
type StartStreamResponse struct {
	SessionID       string `json:"session_id"`
	StreamURL       string `json:"stream_url"`
	Duration        int    `json:"duration"`
	CurrentPosition int    `json:"current_position"`
}

// StreamProgressRequest is the body for PATCH /streams/:id/progress.
type StreamProgressRequest struct {
	CurrentPosition int    `json:"current_position"`
	Quality         string `json:"quality"`
}

// EndStreamRequest is the body for POST /streams/:id/end.
type EndStreamRequest struct {
	Reason        EndReason `json:"reason" binding:"required"`
	WatchDuration int       `json:"watch_duration"`
}

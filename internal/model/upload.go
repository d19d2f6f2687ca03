package model

import "time"

// UploadStatus represents the upload state machine:
// uploaded -> processing -> {approved, rejected, failed}.
type UploadStatus string

const (
	UploadUploaded   UploadStatus = "uploaded"
	UploadProcessing UploadStatus = "processing"
	UploadApproved   UploadStatus = "approved"
	UploadRejected   UploadStatus = "rejected"
	UploadFailed     UploadStatus = "failed"
)

// IsTerminal reports whether the status ends the upload lifecycle.
func (s UploadStatus) IsTerminal() bool {
	return s == UploadApproved || s == UploadRejected || s == UploadFailed
}

// MediaMetadata describes the content being uploaded.
type MediaMetadata struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Genre         []string `json:"genre"`
	Duration      int      `json:"duration"`
	Artist        string   `json:"artist,omitempty"`
	Language      string   `json:"language"`
	ContentRating string   `json:"content_rating"` // G, PG, PG-13, R, NC-17
}

// MediaUpload tracks an in-flight or finished upload. MediaID is set once
// the upload is promoted into the catalog.
type MediaUpload struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	FileName       string        `json:"file_name"`
	FileSize       int64         `json:"file_size"`
	Status         UploadStatus  `json:"status"`
	UploadProgress int           `json:"upload_progress"` // 0-100
	MediaID        string        `json:"media_id,omitempty"`
	Metadata       MediaMetadata `json:"metadata"`
	UploadedAt     time.Time     `json:"uploaded_at"`
	ProcessedAt    *time.Time    `json:"processed_at,omitempty"`
}

// ModerationStatus of a reviewed upload.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// ModerationFlag is one concern raised during review.
type ModerationFlag struct {
	Type        string  `json:"type"` // adult, violence, hate_speech, copyright, spam
	Confidence  float64 `json:"confidence"` // 0-1
	Description string  `json:"description"`
}

// ModerationResult is 1:1 with an upload, created when the upload completes.
type ModerationResult struct {
	ID         string           `json:"id"`
	UploadID   string           `json:"upload_id"`
	Status     ModerationStatus `json:"status"`
	Reason     string           `json:"reason,omitempty"`
	ReviewedBy string           `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time       `json:"reviewed_at,omitempty"`
	Flags      []ModerationFlag `json:"flags"`
}

// InitiateUploadRequest is the body for POST /uploads.
type InitiateUploadRequest struct {
	FileName string        `json:"file_name" binding:"required"`
	FileSize int64         `json:"file_size" binding:"min=0"`
	FileType string        `json:"file_type"`
	Metadata MediaMetadata `json:"metadata"`
}

// InitiateUploadResponse returns where to put the bytes.
type InitiateUploadResponse struct {
	UploadID    string `json:"upload_id"`
	UploadURL   string `json:"upload_url"`
	UploadToken string `json:"upload_token"`
}

// CompleteUploadResponse bundles the finished upload with its catalog entry.
type CompleteUploadResponse struct {
	Media  Media       `json:"media"`
	Upload MediaUpload `json:"upload"`
}

// UploadHistoryResponse is the paginated upload list.
type UploadHistoryResponse struct {
	Uploads    []MediaUpload `json:"uploads"`
	Pagination Pagination    `json:"pagination"`
}

// UpdateProgressRequest is the body for PATCH /uploads/:id/progress.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

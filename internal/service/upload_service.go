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

// UploadServicer is the upload pipeline contract consumed by handlers.
type UploadServicer interface {
	InitiateUpload(ctx context.Context, userID string, req model.InitiateUploadRequest) (model.InitiateUploadResponse, error)
	CompleteUpload(ctx context.Context, uploadID string) (model.CompleteUploadResponse, error)
	CancelUpload(ctx context.Context, uploadID string) error
	GetUploadStatus(ctx context.Context, uploadID string) (model.MediaUpload, error)
	GetUploadHistory(ctx context.Context, userID string, page, pageSize int) (model.UploadHistoryResponse, error)
	UpdateUploadProgress(ctx context.Context, uploadID string, progress int) (model.MediaUpload, error)
	GetModerationResult(ctx context.Context, uploadID string) (model.ModerationResult, error)
	DeleteUpload(ctx context.Context, uploadID string) error
}

// UploadService runs the upload and moderation pipeline.
type UploadService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger
}

// NewUploadService creates the upload service.
func NewUploadService(st *store.Store, cfg *config.Config, log *zap.Logger) *UploadService {
	return &UploadService{store: st, cfg: cfg, log: log}
}

// InitiateUpload registers a pending upload and hands back a signed-URL
// stand-in for the client to push bytes to.
func (s *UploadService) InitiateUpload(ctx context.Context, userID string, req model.InitiateUploadRequest) (model.InitiateUploadResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	up := model.MediaUpload{
		ID:             "upload-" + uuid.New().String(),
		UserID:         userID,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		Status:         model.UploadUploaded,
		UploadProgress: 0,
		Metadata:       req.Metadata,
		UploadedAt:     time.Now(),
	}
	s.store.PutUpload(up)
	s.log.Info("upload initiated",
		zap.String("upload_id", up.ID),
		zap.String("user_id", userID),
		zap.String("file_name", req.FileName))

	return model.InitiateUploadResponse{
		UploadID:    up.ID,
		UploadURL:   fmt.Sprintf("https://upload.streamvault.local/%s", up.ID),
		UploadToken: "upload-token-" + uuid.New().String(),
	}, nil
}

// CompleteUpload runs the post-upload pipeline synchronously: the upload is
// marked processing, moderated, approved, and promoted into the catalog.
func (s *UploadService) CompleteUpload(ctx context.Context, uploadID string) (model.CompleteUploadResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	up, ok := s.store.GetUpload(uploadID)
	if !ok {
		return model.CompleteUploadResponse{}, errs.ErrNotFound
	}

	s.store.UpdateUpload(uploadID, func(u *model.MediaUpload) {
		u.Status = model.UploadProcessing
		u.UploadProgress = 100
	})

	// Mock moderation passes everything.
	now := time.Now()
	mod := model.ModerationResult{
		ID:         "mod-" + uuid.New().String(),
		UploadID:   uploadID,
		Status:     model.ModerationApproved,
		ReviewedBy: "auto-moderator",
		ReviewedAt: &now,
		Flags:      []model.ModerationFlag{},
	}
	s.store.PutModeration(mod)

	media := model.Media{
		ID:          "media-" + uuid.New().String(),
		Title:       up.Metadata.Title,
		Description: up.Metadata.Description,
		Type:        model.MediaTypeMovie,
		Artist:      up.Metadata.Artist,
		Genre:       up.Metadata.Genre,
		Duration:    up.Metadata.Duration,
		ReleaseDate: now,
		IsApproved:  true,
		UploadedBy:  up.UserID,
		UploadedAt:  now,
		Quality:     []model.MediaQuality{},
	}
	s.store.AppendMedia(media)

	final, _ := s.store.UpdateUpload(uploadID, func(u *model.MediaUpload) {
		u.Status = model.UploadApproved
		u.MediaID = media.ID
		u.ProcessedAt = &now
	})
	s.log.Info("upload completed",
		zap.String("upload_id", uploadID),
		zap.String("media_id", media.ID))

	return model.CompleteUploadResponse{Media: media, Upload: final}, nil
}

// CancelUpload discards an upload that has not entered processing. Once
// processing or approved, the upload cannot be cancelled.
func (s *UploadService) CancelUpload(ctx context.Context, uploadID string) error {
	simulate(ctx, s.cfg.SimLatency)

	up, ok := s.store.GetUpload(uploadID)
	if !ok {
		return errs.ErrNotFound
	}
	if up.Status == model.UploadProcessing || up.Status == model.UploadApproved {
		return errs.ErrUploadNotCancelable
	}
	s.store.DeleteUpload(uploadID)
	return nil
}

// GetUploadStatus returns the current upload record.
func (s *UploadService) GetUploadStatus(ctx context.Context, uploadID string) (model.MediaUpload, error) {
	simulate(ctx, s.cfg.SimLatency)
	up, ok := s.store.GetUpload(uploadID)
	if !ok {
		return model.MediaUpload{}, errs.ErrNotFound
	}
	return up, nil
}

// GetUploadHistory returns the user's uploads, paginated.
func (s *UploadService) GetUploadHistory(ctx context.Context, userID string, page, pageSize int) (model.UploadHistoryResponse, error) {
	simulate(ctx, s.cfg.SimLatency)
	all := s.store.ListUploadsByUser(userID)
	items, pagination := model.Paginate(all, page, pageSize, s.cfg.DefaultPageSize)
	return model.UploadHistoryResponse{Uploads: items, Pagination: pagination}, nil
}

// UpdateUploadProgress moves the progress forward. Values are clamped to
// [0,100], regressions are ignored, and terminal uploads never change.
func (s *UploadService) UpdateUploadProgress(ctx context.Context, uploadID string, progress int) (model.MediaUpload, error) {
	simulate(ctx, s.cfg.SimLatency)

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	up, ok := s.store.UpdateUpload(uploadID, func(u *model.MediaUpload) {
		if u.Status.IsTerminal() || progress <= u.UploadProgress {
			return
		}
		u.UploadProgress = progress
	})
	if !ok {
		return model.MediaUpload{}, errs.ErrNotFound
	}
	return up, nil
}

// GetModerationResult returns the review attached to an upload.
func (s *UploadService) GetModerationResult(ctx context.Context, uploadID string) (model.ModerationResult, error) {
	simulate(ctx, s.cfg.SimLatency)
	mod, ok := s.store.GetModeration(uploadID)
	if !ok {
		return model.ModerationResult{}, errs.ErrNotFound
	}
	return mod, nil
}

// DeleteUpload removes the upload, its moderation record, and the catalog
// entry it produced, in that dependency order.
func (s *UploadService) DeleteUpload(ctx context.Context, uploadID string) error {
	simulate(ctx, s.cfg.SimLatency)

	up, ok := s.store.GetUpload(uploadID)
	if !ok {
		return errs.ErrNotFound
	}
	if up.MediaID != "" {
		s.store.DeleteMedia(up.MediaID)
	}
	s.store.DeleteUpload(uploadID)
	return nil
}

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

func newUploadService() (*UploadService, *store.Store) {
	st := store.NewSeeded()
	return NewUploadService(st, testConfig(), zap.NewNop()), st
}

func initiateReq() model.InitiateUploadRequest {
	return model.InitiateUploadRequest{
		FileName: "sunset.mp4",
		FileSize: 1 << 20,
		Metadata: model.MediaMetadata{
			Title:       "Sunset Timelapse",
			Description: "A timelapse over the bay",
			Genre:       []string{"Documentary"},
			Duration:    240,
			Language:    "en",
		},
	}
}

func TestCompleteUploadApprovesAndCreatesMedia(t *testing.T) {
	svc, st := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)
	assert.NotEmpty(t, init.UploadURL)
	assert.NotEmpty(t, init.UploadToken)

	resp, err := svc.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)

	up := resp.Upload
	assert.Equal(t, model.UploadApproved, up.Status)
	assert.Equal(t, 100, up.UploadProgress)
	assert.NotEmpty(t, up.MediaID)
	require.NotNil(t, up.ProcessedAt)

	media := resp.Media
	assert.Equal(t, up.MediaID, media.ID)
	assert.Equal(t, "Sunset Timelapse", media.Title)
	assert.Equal(t, 240, media.Duration)
	assert.True(t, media.IsApproved)
	_, ok := st.GetMedia(media.ID)
	assert.True(t, ok)

	mod, err := svc.GetModerationResult(ctx, init.UploadID)
	require.NoError(t, err)
	assert.Equal(t, model.ModerationApproved, mod.Status)
	assert.Equal(t, init.UploadID, mod.UploadID)
}

func TestCancelUploadBeforeProcessing(t *testing.T) {
	svc, _ := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)

	require.NoError(t, svc.CancelUpload(ctx, init.UploadID))

	_, err = svc.GetUploadStatus(ctx, init.UploadID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCancelUploadAfterApprovalIsRejected(t *testing.T) {
	svc, _ := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)
	_, err = svc.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)

	err = svc.CancelUpload(ctx, init.UploadID)
	assert.ErrorIs(t, err, errs.ErrUploadNotCancelable)
}

func TestUpdateUploadProgressClampsAndIgnoresRegressions(t *testing.T) {
	svc, _ := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)

	up, err := svc.UpdateUploadProgress(ctx, init.UploadID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100, up.UploadProgress)

	up, err = svc.UpdateUploadProgress(ctx, init.UploadID, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, up.UploadProgress)

	_, err = svc.UpdateUploadProgress(ctx, "upload-missing", 10)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUploadProgressFrozenAfterTerminalStatus(t *testing.T) {
	svc, _ := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)
	_, err = svc.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)

	up, err := svc.UpdateUploadProgress(ctx, init.UploadID, 1)
	require.NoError(t, err)
	assert.Equal(t, model.UploadApproved, up.Status)
	assert.Equal(t, 100, up.UploadProgress)
}

func TestDeleteUploadCascadesToMedia(t *testing.T) {
	svc, st := newUploadService()
	ctx := context.Background()

	init, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
	require.NoError(t, err)
	resp, err := svc.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUpload(ctx, init.UploadID))

	_, ok := st.GetMedia(resp.Media.ID)
	assert.False(t, ok)
	_, err = svc.GetUploadStatus(ctx, init.UploadID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.GetModerationResult(ctx, init.UploadID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetUploadHistoryPagination(t *testing.T) {
	svc, _ := newUploadService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.InitiateUpload(ctx, "user-001", initiateReq())
		require.NoError(t, err)
	}

	resp, err := svc.GetUploadHistory(ctx, "user-001", 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Uploads, 2)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	// Pages past the end are empty, not an error.
	resp, err = svc.GetUploadHistory(ctx, "user-001", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, resp.Uploads)
}

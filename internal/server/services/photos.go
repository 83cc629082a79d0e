package services

import (
	"context"
	"database/sql"
	"io"

	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifelog/internal/server/storage"
	"github.com/google/uuid"
)

// PhotoUpload is one image file plus the metadata sent next to it.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Metadata    models.PhotoMetadata
}

type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
	maxSize     int64
	logger      logging.Logger
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore, maxSize int64, logger logging.Logger) *PhotoService {
	return &PhotoService{db: db, repomanager: m, store: store, maxSize: maxSize, logger: logger}
}

// Upload stores the bytes first and the row second. When the row cannot be
// written the stored object is removed again.
func (s *PhotoService) Upload(ctx context.Context, userID string, u PhotoUpload) (*models.Photo, error) {
	if err := models.ValidatePhotoFile(u.ContentType, u.Size, s.maxSize); err != nil {
		return nil, err
	}
	meta := u.Metadata
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	key := storage.NewKey(u.Filename, u.ContentType)
	if err := s.store.Put(ctx, key, u.Body, u.Size, u.ContentType); err != nil {
		return nil, err
	}

	p := &models.Photo{
		ID:             uuid.NewString(),
		UserID:         userID,
		StorageKey:     key,
		ImageURL:       storage.PublicURL(key),
		Location:       meta.Location,
		Mood:           meta.Mood,
		Tags:           meta.Tags,
		Story:          meta.Story,
		TechnicalNotes: meta.TechnicalNotes,
		LifePhaseName:  meta.LifePhaseName,
		DateUploaded:   timeNow().UTC(),
	}

	if err := s.repomanager.Photos(s.db).Create(ctx, p); err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			s.logger.Warn(ctx, "orphaned photo object", "key", key, "error", derr)
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the row, then the stored object. A failure to remove the
// object is logged and not reported.
func (s *PhotoService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.repomanager.Photos(s.db).Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, p.StorageKey); err != nil {
		s.logger.Warn(ctx, "failed to delete photo object", "key", p.StorageKey, "error", err)
	}
	return nil
}

func (s *PhotoService) Get(ctx context.Context, userID, id string) (*models.Photo, error) {
	return s.repomanager.Photos(s.db).Get(ctx, userID, id)
}

func (s *PhotoService) List(ctx context.Context, userID string, f photos.Filter) ([]*models.Photo, error) {
	return s.repomanager.Photos(s.db).List(ctx, userID, f)
}

// Open streams a stored photo by key.
func (s *PhotoService) Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	return s.store.Get(ctx, key)
}

// DirectURL returns a presigned download URL when the store supports one.
func (s *PhotoService) DirectURL(ctx context.Context, key string) (string, bool, error) {
	p, ok := s.store.(storage.Presigner)
	if !ok {
		return "", false, nil
	}
	url, err := p.PresignGet(ctx, key)
	return url, true, err
}

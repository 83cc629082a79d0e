package services

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/client/api"
	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

// PhotoFile is a local image about to be uploaded. Size and ContentType are
// what the caller declares; they are checked before anything is sent.
type PhotoFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type PhotoService interface {
	Upload(ctx context.Context, f PhotoFile, meta models.PhotoMetadata) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.Photo, error)
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	FilterByMood(ctx context.Context, m models.Mood) ([]*models.Photo, error)
	FilterByTag(ctx context.Context, tag string) ([]*models.Photo, error)
	FilterByPhase(ctx context.Context, phase string) ([]*models.Photo, error)
}

type photoService struct {
	r Requester
}

func NewPhotoService(r Requester) PhotoService {
	return &photoService{r: r}
}

// Upload rejects non-image or oversized files without touching the network,
// then sends exactly one multipart request.
func (s *photoService) Upload(ctx context.Context, f PhotoFile, meta models.PhotoMetadata) (*models.Photo, error) {
	if err := models.ValidatePhotoFile(f.ContentType, f.Size, common.MaxPhotoSize); err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	var out models.Photo
	err := s.r.Upload(ctx, "/photos", api.FilePart{
		Field:       "file",
		Filename:    f.Name,
		ContentType: f.ContentType,
		Body:        f.Body,
	}, "metadata", meta, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *photoService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/photos/"+seg(id))
}

func (s *photoService) GetAll(ctx context.Context) ([]*models.Photo, error) {
	return list[models.Photo](ctx, s.r, "/photos")
}

func (s *photoService) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	return one[models.Photo](ctx, s.r, http.MethodGet, "/photos/"+seg(id), nil)
}

func (s *photoService) FilterByMood(ctx context.Context, m models.Mood) ([]*models.Photo, error) {
	return list[models.Photo](ctx, s.r, "/photos/filter/mood/"+seg(string(m)))
}

func (s *photoService) FilterByTag(ctx context.Context, tag string) ([]*models.Photo, error) {
	return list[models.Photo](ctx, s.r, "/photos/filter/tag/"+seg(tag))
}

func (s *photoService) FilterByPhase(ctx context.Context, phase string) ([]*models.Photo, error) {
	return list[models.Photo](ctx, s.r, "/photos/filter/phase/"+seg(phase))
}

package photos

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type Filter struct {
	Mood  models.Mood
	Tag   string
	Phase string
}

// Repository stores photo metadata. Image bytes live in a storage.BlobStore
// under Photo.StorageKey.
type Repository interface {
	Create(ctx context.Context, p *models.Photo) error
	Get(ctx context.Context, userID, id string) (*models.Photo, error)
	// Delete removes the row and returns it so the caller can drop the blob.
	Delete(ctx context.Context, userID, id string) (*models.Photo, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.Photo, error)
}

package tastes

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

// Filter narrows List. Zero fields are ignored.
type Filter struct {
	Type  models.TasteType
	Tag   string
	Phase string
	// Query matches title or personal note.
	Query string
	// SortByRating orders by rating desc, then date consumed desc.
	SortByRating bool
}

type Repository interface {
	Create(ctx context.Context, t *models.Taste) error
	Update(ctx context.Context, t *models.Taste) error
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Taste, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.Taste, error)
}

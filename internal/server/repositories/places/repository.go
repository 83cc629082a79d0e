package places

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type Filter struct {
	Status models.PlaceStatus
	Type   models.PlaceType
	Tag    string
	Phase  string
}

type Repository interface {
	Create(ctx context.Context, p *models.Place) error
	Update(ctx context.Context, p *models.Place) error
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Place, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.Place, error)
}

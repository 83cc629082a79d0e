package phases

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.LifePhase) error
	Update(ctx context.Context, p *models.LifePhase) error
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.LifePhase, error)
	List(ctx context.Context, userID string) ([]*models.LifePhase, error)
}

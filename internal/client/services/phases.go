package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type PhaseService interface {
	Create(ctx context.Context, p *models.LifePhase) (*models.LifePhase, error)
	Update(ctx context.Context, id string, p *models.LifePhase) (*models.LifePhase, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.LifePhase, error)
	GetByID(ctx context.Context, id string) (*models.LifePhase, error)
}

type phaseService struct {
	r Requester
}

func NewPhaseService(r Requester) PhaseService {
	return &phaseService{r: r}
}

func (s *phaseService) Create(ctx context.Context, p *models.LifePhase) (*models.LifePhase, error) {
	return one[models.LifePhase](ctx, s.r, http.MethodPost, "/phases", p)
}

func (s *phaseService) Update(ctx context.Context, id string, p *models.LifePhase) (*models.LifePhase, error) {
	return one[models.LifePhase](ctx, s.r, http.MethodPut, "/phases/"+seg(id), p)
}

func (s *phaseService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/phases/"+seg(id))
}

func (s *phaseService) GetAll(ctx context.Context) ([]*models.LifePhase, error) {
	return list[models.LifePhase](ctx, s.r, "/phases")
}

func (s *phaseService) GetByID(ctx context.Context, id string) (*models.LifePhase, error) {
	return one[models.LifePhase](ctx, s.r, http.MethodGet, "/phases/"+seg(id), nil)
}

package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type PlaceService interface {
	Create(ctx context.Context, p *models.Place) (*models.Place, error)
	Update(ctx context.Context, id string, p *models.Place) (*models.Place, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.Place, error)
	GetByID(ctx context.Context, id string) (*models.Place, error)
	FilterByStatus(ctx context.Context, st models.PlaceStatus) ([]*models.Place, error)
	FilterByType(ctx context.Context, t models.PlaceType) ([]*models.Place, error)
	FilterByTag(ctx context.Context, tag string) ([]*models.Place, error)
	FilterByPhase(ctx context.Context, phase string) ([]*models.Place, error)
}

type placeService struct {
	r Requester
}

func NewPlaceService(r Requester) PlaceService {
	return &placeService{r: r}
}

func (s *placeService) Create(ctx context.Context, p *models.Place) (*models.Place, error) {
	return one[models.Place](ctx, s.r, http.MethodPost, "/places", p)
}

func (s *placeService) Update(ctx context.Context, id string, p *models.Place) (*models.Place, error) {
	return one[models.Place](ctx, s.r, http.MethodPut, "/places/"+seg(id), p)
}

func (s *placeService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/places/"+seg(id))
}

func (s *placeService) GetAll(ctx context.Context) ([]*models.Place, error) {
	return list[models.Place](ctx, s.r, "/places")
}

func (s *placeService) GetByID(ctx context.Context, id string) (*models.Place, error) {
	return one[models.Place](ctx, s.r, http.MethodGet, "/places/"+seg(id), nil)
}

func (s *placeService) FilterByStatus(ctx context.Context, st models.PlaceStatus) ([]*models.Place, error) {
	return list[models.Place](ctx, s.r, "/places/filter/status/"+seg(string(st)))
}

func (s *placeService) FilterByType(ctx context.Context, t models.PlaceType) ([]*models.Place, error) {
	return list[models.Place](ctx, s.r, "/places/filter/type/"+seg(string(t)))
}

func (s *placeService) FilterByTag(ctx context.Context, tag string) ([]*models.Place, error) {
	return list[models.Place](ctx, s.r, "/places/filter/tag/"+seg(tag))
}

func (s *placeService) FilterByPhase(ctx context.Context, phase string) ([]*models.Place, error) {
	return list[models.Place](ctx, s.r, "/places/filter/phase/"+seg(phase))
}

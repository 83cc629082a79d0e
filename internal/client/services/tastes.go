package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type TasteService interface {
	Create(ctx context.Context, t *models.Taste) (*models.Taste, error)
	Update(ctx context.Context, id string, t *models.Taste) (*models.Taste, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.Taste, error)
	GetByID(ctx context.Context, id string) (*models.Taste, error)
	SortByRating(ctx context.Context) ([]*models.Taste, error)
	Search(ctx context.Context, q string) ([]*models.Taste, error)
	FilterByType(ctx context.Context, t models.TasteType) ([]*models.Taste, error)
	FilterByTag(ctx context.Context, tag string) ([]*models.Taste, error)
	FilterByPhase(ctx context.Context, phase string) ([]*models.Taste, error)
}

type tasteService struct {
	r Requester
}

func NewTasteService(r Requester) TasteService {
	return &tasteService{r: r}
}

func (s *tasteService) Create(ctx context.Context, t *models.Taste) (*models.Taste, error) {
	return one[models.Taste](ctx, s.r, http.MethodPost, "/tastes", t)
}

func (s *tasteService) Update(ctx context.Context, id string, t *models.Taste) (*models.Taste, error) {
	return one[models.Taste](ctx, s.r, http.MethodPut, "/tastes/"+seg(id), t)
}

func (s *tasteService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/tastes/"+seg(id))
}

func (s *tasteService) GetAll(ctx context.Context) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes")
}

func (s *tasteService) GetByID(ctx context.Context, id string) (*models.Taste, error) {
	return one[models.Taste](ctx, s.r, http.MethodGet, "/tastes/"+seg(id), nil)
}

func (s *tasteService) SortByRating(ctx context.Context) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes/sort/rating")
}

func (s *tasteService) Search(ctx context.Context, q string) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes/search?q="+url.QueryEscape(q))
}

func (s *tasteService) FilterByType(ctx context.Context, t models.TasteType) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes/filter/type/"+seg(string(t)))
}

func (s *tasteService) FilterByTag(ctx context.Context, tag string) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes/filter/tag/"+seg(tag))
}

func (s *tasteService) FilterByPhase(ctx context.Context, phase string) ([]*models.Taste, error) {
	return list[models.Taste](ctx, s.r, "/tastes/filter/phase/"+seg(phase))
}

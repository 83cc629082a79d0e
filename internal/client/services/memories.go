package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

// MemoryService has no Update: memories are immutable once created.
type MemoryService interface {
	Create(ctx context.Context, m *models.Memory) (*models.Memory, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.Memory, error)
	GetByID(ctx context.Context, id string) (*models.Memory, error)
	FilterByMood(ctx context.Context, m models.Mood) ([]*models.Memory, error)
	FilterByTag(ctx context.Context, tag string) ([]*models.Memory, error)
	FilterByPhase(ctx context.Context, phase string) ([]*models.Memory, error)
}

type memoryService struct {
	r Requester
}

func NewMemoryService(r Requester) MemoryService {
	return &memoryService{r: r}
}

func (s *memoryService) Create(ctx context.Context, m *models.Memory) (*models.Memory, error) {
	return one[models.Memory](ctx, s.r, http.MethodPost, "/memories", m)
}

func (s *memoryService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/memories/"+seg(id))
}

func (s *memoryService) GetAll(ctx context.Context) ([]*models.Memory, error) {
	return list[models.Memory](ctx, s.r, "/memories")
}

func (s *memoryService) GetByID(ctx context.Context, id string) (*models.Memory, error) {
	return one[models.Memory](ctx, s.r, http.MethodGet, "/memories/"+seg(id), nil)
}

func (s *memoryService) FilterByMood(ctx context.Context, m models.Mood) ([]*models.Memory, error) {
	return list[models.Memory](ctx, s.r, "/memories/filter/mood/"+seg(string(m)))
}

func (s *memoryService) FilterByTag(ctx context.Context, tag string) ([]*models.Memory, error) {
	return list[models.Memory](ctx, s.r, "/memories/filter/tag/"+seg(tag))
}

func (s *memoryService) FilterByPhase(ctx context.Context, phase string) ([]*models.Memory, error) {
	return list[models.Memory](ctx, s.r, "/memories/filter/phase/"+seg(phase))
}

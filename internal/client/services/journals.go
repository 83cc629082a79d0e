package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type JournalService interface {
	Create(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error)
	Update(ctx context.Context, id string, e *models.JournalEntry) (*models.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*models.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*models.JournalEntry, error)
	GetByDate(ctx context.Context, d models.Date) ([]*models.JournalEntry, error)
	Search(ctx context.Context, q string) ([]*models.JournalEntry, error)
	FilterByMood(ctx context.Context, m models.Mood) ([]*models.JournalEntry, error)
	FilterByTag(ctx context.Context, tag string) ([]*models.JournalEntry, error)
	FilterByContext(ctx context.Context, c string) ([]*models.JournalEntry, error)
	FilterByPhase(ctx context.Context, phase string) ([]*models.JournalEntry, error)
}

type journalService struct {
	r Requester
}

func NewJournalService(r Requester) JournalService {
	return &journalService{r: r}
}

func (s *journalService) Create(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	return one[models.JournalEntry](ctx, s.r, http.MethodPost, "/journals", e)
}

func (s *journalService) Update(ctx context.Context, id string, e *models.JournalEntry) (*models.JournalEntry, error) {
	return one[models.JournalEntry](ctx, s.r, http.MethodPut, "/journals/"+seg(id), e)
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.r, "/journals/"+seg(id))
}

func (s *journalService) GetAll(ctx context.Context) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals")
}

func (s *journalService) GetByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	return one[models.JournalEntry](ctx, s.r, http.MethodGet, "/journals/"+seg(id), nil)
}

func (s *journalService) GetByDate(ctx context.Context, d models.Date) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/date/"+d.String())
}

func (s *journalService) Search(ctx context.Context, q string) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/search?q="+url.QueryEscape(q))
}

func (s *journalService) FilterByMood(ctx context.Context, m models.Mood) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/filter/mood/"+seg(string(m)))
}

func (s *journalService) FilterByTag(ctx context.Context, tag string) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/filter/tag/"+seg(tag))
}

func (s *journalService) FilterByContext(ctx context.Context, c string) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/filter/context/"+seg(c))
}

func (s *journalService) FilterByPhase(ctx context.Context, phase string) ([]*models.JournalEntry, error) {
	return list[models.JournalEntry](ctx, s.r, "/journals/filter/phase/"+seg(phase))
}

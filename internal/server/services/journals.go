package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type JournalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewJournalService(db *sql.DB, m repomanager.RepositoryManager) *JournalService {
	return &JournalService{db: db, repomanager: m}
}

func (s *JournalService) Create(ctx context.Context, userID string, e *models.JournalEntry) (*models.JournalEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	now := timeNow().UTC()
	e.ID = uuid.NewString()
	e.UserID = userID
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Date.IsZero() {
		e.Date = models.Today()
	}

	if err := s.repomanager.Journals(s.db).Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the editable fields and returns the stored entry. An
// entry sent without a date keeps the stored one.
func (s *JournalService) Update(ctx context.Context, userID, id string, e *models.JournalEntry) (*models.JournalEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	e.ID = id
	e.UserID = userID
	e.UpdatedAt = timeNow().UTC()

	repo := s.repomanager.Journals(s.db)
	if e.Date.IsZero() {
		cur, err := repo.Get(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		e.Date = cur.Date
	}
	if err := repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, id)
}

func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Journals(s.db).SoftDelete(ctx, userID, id)
}

func (s *JournalService) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	return s.repomanager.Journals(s.db).Get(ctx, userID, id)
}

func (s *JournalService) List(ctx context.Context, userID string, f journals.Filter) ([]*models.JournalEntry, error) {
	return s.repomanager.Journals(s.db).List(ctx, userID, f)
}

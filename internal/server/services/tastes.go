package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/google/uuid"
)

type TasteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTasteService(db *sql.DB, m repomanager.RepositoryManager) *TasteService {
	return &TasteService{db: db, repomanager: m}
}

func (s *TasteService) Create(ctx context.Context, userID string, t *models.Taste) (*models.Taste, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	t.UserID = userID

	if err := s.repomanager.Tastes(s.db).Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TasteService) Update(ctx context.Context, userID, id string, t *models.Taste) (*models.Taste, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.ID = id
	t.UserID = userID

	if err := s.repomanager.Tastes(s.db).Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TasteService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Tastes(s.db).Delete(ctx, userID, id)
}

func (s *TasteService) Get(ctx context.Context, userID, id string) (*models.Taste, error) {
	return s.repomanager.Tastes(s.db).Get(ctx, userID, id)
}

func (s *TasteService) List(ctx context.Context, userID string, f tastes.Filter) ([]*models.Taste, error) {
	return s.repomanager.Tastes(s.db).List(ctx, userID, f)
}

package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type PhaseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPhaseService(db *sql.DB, m repomanager.RepositoryManager) *PhaseService {
	return &PhaseService{db: db, repomanager: m}
}

func (s *PhaseService) Create(ctx context.Context, userID string, p *models.LifePhase) (*models.LifePhase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.UserID = userID

	if err := s.repomanager.Phases(s.db).Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PhaseService) Update(ctx context.Context, userID, id string, p *models.LifePhase) (*models.LifePhase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = id
	p.UserID = userID

	if err := s.repomanager.Phases(s.db).Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PhaseService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Phases(s.db).Delete(ctx, userID, id)
}

func (s *PhaseService) Get(ctx context.Context, userID, id string) (*models.LifePhase, error) {
	return s.repomanager.Phases(s.db).Get(ctx, userID, id)
}

func (s *PhaseService) List(ctx context.Context, userID string) ([]*models.LifePhase, error) {
	return s.repomanager.Phases(s.db).List(ctx, userID)
}

package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type PlaceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPlaceService(db *sql.DB, m repomanager.RepositoryManager) *PlaceService {
	return &PlaceService{db: db, repomanager: m}
}

func (s *PlaceService) Create(ctx context.Context, userID string, p *models.Place) (*models.Place, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.UserID = userID

	if err := s.repomanager.Places(s.db).Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) Update(ctx context.Context, userID, id string, p *models.Place) (*models.Place, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = id
	p.UserID = userID

	if err := s.repomanager.Places(s.db).Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Places(s.db).Delete(ctx, userID, id)
}

func (s *PlaceService) Get(ctx context.Context, userID, id string) (*models.Place, error) {
	return s.repomanager.Places(s.db).Get(ctx, userID, id)
}

func (s *PlaceService) List(ctx context.Context, userID string, f places.Filter) ([]*models.Place, error) {
	return s.repomanager.Places(s.db).List(ctx, userID, f)
}

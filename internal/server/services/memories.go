package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type MemoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMemoryService(db *sql.DB, m repomanager.RepositoryManager) *MemoryService {
	return &MemoryService{db: db, repomanager: m}
}

// Create stamps the memory with the server clock.
func (s *MemoryService) Create(ctx context.Context, userID string, m *models.Memory) (*models.Memory, error) {
	m.ShortText = strings.TrimSpace(m.ShortText)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	m.UserID = userID
	m.Timestamp = timeNow().UTC()

	if err := s.repomanager.Memories(s.db).Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemoryService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Memories(s.db).Delete(ctx, userID, id)
}

func (s *MemoryService) Get(ctx context.Context, userID, id string) (*models.Memory, error) {
	return s.repomanager.Memories(s.db).Get(ctx, userID, id)
}

func (s *MemoryService) List(ctx context.Context, userID string, f memories.Filter) ([]*models.Memory, error) {
	return s.repomanager.Memories(s.db).List(ctx, userID, f)
}

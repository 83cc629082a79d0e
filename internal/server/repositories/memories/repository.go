package memories

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

type Filter struct {
	Mood  models.Mood
	Tag   string
	Phase string
}

// Repository has no Update: memories are immutable once written.
type Repository interface {
	Create(ctx context.Context, m *models.Memory) error
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Memory, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.Memory, error)
}

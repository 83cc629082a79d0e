package journals

import (
	"context"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

// Filter narrows List. Zero fields are ignored.
type Filter struct {
	Date    models.Date
	Query   string
	Mood    models.Mood
	Tag     string
	Context string
	Phase   string
}

type Repository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	Update(ctx context.Context, entry *models.JournalEntry) error
	SoftDelete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.JournalEntry, error)
}

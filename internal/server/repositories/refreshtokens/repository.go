package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores token for userID, expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is unknown.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// DeleteExpired purges tokens whose expiry is before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Package services maps every LifeLog API operation onto one HTTP call.
// Nothing here retries, caches or deduplicates.
package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lifelog/internal/client/api"
)

// Requester is the transport the services need. *api.Client satisfies it.
type Requester interface {
	Do(ctx context.Context, method, path string, in, out any) error
	Upload(ctx context.Context, path string, file api.FilePart, metaField string, meta, out any) error
}

func list[T any](ctx context.Context, r Requester, path string) ([]*T, error) {
	var out []*T
	if err := r.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

func one[T any](ctx context.Context, r Requester, method, path string, in any) (*T, error) {
	var out T
	if err := r.Do(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func del(ctx context.Context, r Requester, path string) error {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

// seg escapes a single path segment.
func seg(s string) string {
	return url.PathEscape(s)
}

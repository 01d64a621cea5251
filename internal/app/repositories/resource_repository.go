package repositories

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ResourceRepository is the CRUD accessor of one backend collection. R is the
// record type the backend returns, D the draft type sent on create and update.
// List always returns the full collection; nothing is paginated, filtered or
// sorted server-side.
type ResourceRepository[R any, D any] struct {
	client *Client
	path   string
}

// NewResourceRepository creates a repository for the collection at path
func NewResourceRepository[R any, D any](client *Client, path string) *ResourceRepository[R, D] {
	return &ResourceRepository[R, D]{
		client: client,
		path:   path,
	}
}

// WithToken returns a copy of the repository bound to a bearer token
func (r *ResourceRepository[R, D]) WithToken(token string) *ResourceRepository[R, D] {
	return &ResourceRepository[R, D]{
		client: r.client.WithToken(token),
		path:   r.path,
	}
}

// List fetches every record of the collection
func (r *ResourceRepository[R, D]) List(ctx context.Context) ([]R, error) {
	var items []R
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.path, err)
	}
	if items == nil {
		items = []R{}
	}
	return items, nil
}

// Create submits a draft and returns the record with its assigned identifier
func (r *ResourceRepository[R, D]) Create(ctx context.Context, draft D) (R, error) {
	var created R
	if err := r.client.do(ctx, http.MethodPost, r.path, draft, &created); err != nil {
		return created, fmt.Errorf("creating in %s: %w", r.path, err)
	}
	return created, nil
}

// Update replaces the record with the given identifier. Last writer wins.
func (r *ResourceRepository[R, D]) Update(ctx context.Context, id int64, draft D) (R, error) {
	var updated R
	if err := r.client.do(ctx, http.MethodPut, r.itemPath(id), draft, &updated); err != nil {
		return updated, fmt.Errorf("updating %s/%d: %w", r.path, id, err)
	}
	return updated, nil
}

// Delete removes the record with the given identifier
func (r *ResourceRepository[R, D]) Delete(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		return fmt.Errorf("deleting %s/%d: %w", r.path, id, err)
	}
	return nil
}

func (r *ResourceRepository[R, D]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

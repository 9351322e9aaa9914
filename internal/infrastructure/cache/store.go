package cache

import "context"

// Store keeps taxonomy option lists (categories, subcategories) between
// requests. A miss is reported with ok=false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (values []string, ok bool, err error)
	Set(ctx context.Context, key string, values []string) error
}

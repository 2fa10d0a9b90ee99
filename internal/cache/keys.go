package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	CategoryKeyPrefix = "category:%d"
	ProviderKeyPrefix = "provider:%d"
	CategoriesListKey = "categories"
	ProvidersListKey  = "providers"
)

// Catalog data changes only through seeding or explicit creates, so it can
// sit in cache far longer than per-user data would.
const (
	CategoryTTL = 30 * time.Minute
	ProviderTTL = 10 * time.Minute
)

func CategoryKey(id uint) string {
	return fmt.Sprintf(CategoryKeyPrefix, id)
}

func ProviderKey(id uint) string {
	return fmt.Sprintf(ProviderKeyPrefix, id)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateCategories(ctx context.Context, id uint) {
	Invalidate(ctx, CategoriesListKey, CategoryKey(id))
}

func InvalidateProviders(ctx context.Context, id uint) {
	Invalidate(ctx, ProvidersListKey, ProviderKey(id))
}

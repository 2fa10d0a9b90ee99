package seed

import (
	"context"
	"testing"

	"homegenie/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repos))

	categories, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Maintenance", categories[0].Name)
	assert.Equal(t, "tools-line", categories[0].Icon)

	providers, err := repos.Providers.List(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 6)

	// Providers resolve their category by name
	byName := make(map[string]uint)
	for _, c := range categories {
		byName[c.Name] = c.ID
	}
	for _, p := range providers {
		if p.Name == "Richard's Plumbing" {
			assert.Equal(t, byName["Plumbing"], p.CategoryID)
		}
		if p.Name == "Elite Electric" {
			assert.Equal(t, byName["Electrical"], p.CategoryID)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repos))
	require.NoError(t, Apply(ctx, repos))

	categories, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	providers, err := repos.Providers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, providers, 6)
}

func TestDemo(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	ctx := context.Background()

	require.NoError(t, Demo(ctx, repos, DemoOptions{NumUsers: 4, NumPosts: 8}))

	posts, err := repos.Posts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 8)

	// Like counters match the like rows that were written
	for _, p := range posts {
		count := 0
		for uid := uint(1); uid <= 4; uid++ {
			liked, err := repos.Posts.HasLiked(ctx, p.ID, uid)
			require.NoError(t, err)
			if liked {
				count++
			}
		}
		assert.Equal(t, count, p.LikesCount)
	}
}

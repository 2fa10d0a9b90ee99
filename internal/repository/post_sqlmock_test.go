package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

// The like counter must be bumped in a single UPDATE with an in-database
// expression; read-modify-write from Go would lose concurrent increments.
func TestPostRepository_IncrementLikes_SingleUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "community_posts" SET "likes_count"=likes_count + $1 WHERE id = $2`)).
		WithArgs(1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "community_posts" WHERE "community_posts"."id" = $1 ORDER BY "community_posts"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "likes_count"}).
			AddRow(1, 10, "hello", 4))

	post, err := repo.IncrementLikes(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 4, post.LikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_IncrementLikes_UnknownID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "community_posts" SET "likes_count"=likes_count + $1 WHERE id = $2`)).
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	post, err := repo.IncrementLikes(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"errors"

	"homegenie/internal/models"
	"homegenie/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]models.CommunityPost, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.list", "community_posts")
	defer span.End()

	var posts []models.CommunityPost
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.CommunityPost, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.get_by_id", "community_posts")
	defer span.End()

	var post models.CommunityPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.create", "community_posts")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

// IncrementLikes bumps likes_count by one in a single UPDATE so concurrent
// likes never lose increments, then returns the fresh row.
func (r *postRepository) IncrementLikes(ctx context.Context, id uint) (*models.CommunityPost, error) {
	return r.increment(ctx, id, "likes_count")
}

// IncrementComments bumps comments_count by one in a single UPDATE.
func (r *postRepository) IncrementComments(ctx context.Context, id uint) (*models.CommunityPost, error) {
	return r.increment(ctx, id, "comments_count")
}

func (r *postRepository) increment(ctx context.Context, id uint, column string) (*models.CommunityPost, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.increment_"+column, "community_posts")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&models.CommunityPost{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		span.RecordError(result.Error)
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var post models.CommunityPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) TagsByPost(ctx context.Context, postID uint) ([]models.PostTag, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.tags_by_post", "post_tags")
	defer span.End()

	var tags []models.PostTag
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&tags).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *postRepository) CreateTag(ctx context.Context, tag *models.PostTag) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.create_tag", "post_tags")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) HasLiked(ctx context.Context, postID, userID uint) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.has_liked", "post_likes")
	defer span.End()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// CreateLike inserts a like row and reports whether a row was actually
// inserted. Duplicates are swallowed by the unique (post_id, user_id)
// index with ON CONFLICT DO NOTHING, so racing requests see inserted=false
// instead of an error and exactly one of them wins.
func (r *postRepository) CreateLike(ctx context.Context, like *models.PostLike) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.create_like", "post_likes")
	defer span.End()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) DeleteLike(ctx context.Context, postID, userID uint) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.delete_like", "post_likes")
	defer span.End()

	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) LikesByUser(ctx context.Context, userID uint) ([]models.PostLike, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "posts.likes_by_user", "post_likes")
	defer span.End()

	var likes []models.PostLike
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&likes).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

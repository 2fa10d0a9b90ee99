// Package repository provides the data access layer for the application.
//
// Two interchangeable implementations exist for every interface: a
// GORM/PostgreSQL-backed one and an in-memory one. Both follow the same
// contract: reads return (nil, nil) or an empty slice when nothing matches,
// creates fill in the generated id and default fields, and counter updates
// are atomic.
package repository

import (
	"context"

	"homegenie/internal/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// CategoryRepository defines persistence operations for service categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.ServiceCategory, error)
	GetByID(ctx context.Context, id uint) (*models.ServiceCategory, error)
	Create(ctx context.Context, category *models.ServiceCategory) error
}

// ProviderRepository defines persistence operations for service providers.
type ProviderRepository interface {
	List(ctx context.Context) ([]models.ServiceProvider, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.ServiceProvider, error)
	GetByID(ctx context.Context, id uint) (*models.ServiceProvider, error)
	Create(ctx context.Context, provider *models.ServiceProvider) error
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error)
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	// UpdateStatus replaces only the status field. It returns (nil, nil)
	// when the id does not exist.
	UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error)
}

// PostRepository defines persistence operations for community posts and
// their tags and likes.
type PostRepository interface {
	// List returns all posts ordered by creation time descending.
	List(ctx context.Context) ([]models.CommunityPost, error)
	GetByID(ctx context.Context, id uint) (*models.CommunityPost, error)
	Create(ctx context.Context, post *models.CommunityPost) error
	// IncrementLikes atomically adds one to the post's likes counter and
	// returns the updated post, or (nil, nil) when the id does not exist.
	IncrementLikes(ctx context.Context, id uint) (*models.CommunityPost, error)
	// IncrementComments behaves like IncrementLikes for the comments counter.
	IncrementComments(ctx context.Context, id uint) (*models.CommunityPost, error)

	TagsByPost(ctx context.Context, postID uint) ([]models.PostTag, error)
	CreateTag(ctx context.Context, tag *models.PostTag) error

	HasLiked(ctx context.Context, postID, userID uint) (bool, error)
	// CreateLike inserts a like row and reports whether a row was actually
	// inserted. A duplicate (post, user) pair is not an error; it simply
	// reports false so only the inserting caller bumps the counter.
	CreateLike(ctx context.Context, like *models.PostLike) (bool, error)
	// DeleteLike removes the (post, user) like row and reports whether a
	// row was actually removed.
	DeleteLike(ctx context.Context, postID, userID uint) (bool, error)
	LikesByUser(ctx context.Context, userID uint) ([]models.PostLike, error)
}

// Repositories bundles one repository per entity family so the server and
// seeder can swap the whole storage backend at once.
type Repositories struct {
	Users        UserRepository
	Categories   CategoryRepository
	Providers    ProviderRepository
	Appointments AppointmentRepository
	Posts        PostRepository
}

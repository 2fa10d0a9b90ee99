package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"homegenie/internal/models"
)

// NewMemoryRepositories returns a Repositories backed by in-process maps.
// Useful for local development without Postgres and for handler tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Users:        NewMemoryUserRepository(),
		Categories:   NewMemoryCategoryRepository(),
		Providers:    NewMemoryProviderRepository(),
		Appointments: NewMemoryAppointmentRepository(),
		Posts:        NewMemoryPostRepository(),
	}
}

type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*models.User
	nextID uint
}

// NewMemoryUserRepository returns an in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[uint]*models.User), nextID: 1}
}

func (r *memoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.NewValidationError("User already exists")
		}
	}
	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type memoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uint]*models.ServiceCategory
	nextID     uint
}

// NewMemoryCategoryRepository returns an in-memory CategoryRepository.
func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepository{categories: make(map[uint]*models.ServiceCategory), nextID: 1}
}

func (r *memoryCategoryRepository) List(_ context.Context) ([]models.ServiceCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ServiceCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryCategoryRepository) GetByID(_ context.Context, id uint) (*models.ServiceCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryCategoryRepository) Create(_ context.Context, category *models.ServiceCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = r.nextID
	r.nextID++
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

type memoryProviderRepository struct {
	mu        sync.RWMutex
	providers map[uint]*models.ServiceProvider
	nextID    uint
}

// NewMemoryProviderRepository returns an in-memory ProviderRepository.
func NewMemoryProviderRepository() ProviderRepository {
	return &memoryProviderRepository{providers: make(map[uint]*models.ServiceProvider), nextID: 1}
}

func (r *memoryProviderRepository) List(_ context.Context) ([]models.ServiceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ServiceProvider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryProviderRepository) ListByCategory(_ context.Context, categoryID uint) ([]models.ServiceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.ServiceProvider
	for _, p := range r.providers {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryProviderRepository) GetByID(_ context.Context, id uint) (*models.ServiceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.providers[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryProviderRepository) Create(_ context.Context, provider *models.ServiceProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	provider.ID = r.nextID
	r.nextID++
	cp := *provider
	r.providers[provider.ID] = &cp
	return nil
}

type memoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uint]*models.Appointment
	nextID       uint
}

// NewMemoryAppointmentRepository returns an in-memory AppointmentRepository.
func NewMemoryAppointmentRepository() AppointmentRepository {
	return &memoryAppointmentRepository{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func (r *memoryAppointmentRepository) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryAppointmentRepository) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) Create(_ context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment.ID = r.nextID
	r.nextID++
	if appointment.Status == "" {
		appointment.Status = models.StatusPending
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	cp := *appointment
	r.appointments[appointment.ID] = &cp
	return nil
}

func (r *memoryAppointmentRepository) UpdateStatus(_ context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

type memoryPostRepository struct {
	mu     sync.RWMutex
	posts  map[uint]*models.CommunityPost
	tags   map[uint][]models.PostTag
	likes  map[uint]map[uint]*models.PostLike // postID -> userID -> like
	nextID uint
	tagID  uint
	likeID uint
}

// NewMemoryPostRepository returns an in-memory PostRepository.
func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{
		posts:  make(map[uint]*models.CommunityPost),
		tags:   make(map[uint][]models.PostTag),
		likes:  make(map[uint]map[uint]*models.PostLike),
		nextID: 1,
		tagID:  1,
		likeID: 1,
	}
}

func (r *memoryPostRepository) List(_ context.Context) ([]models.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.CommunityPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	// Newest first; fall back to ID for posts created in the same instant
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryPostRepository) GetByID(_ context.Context, id uint) (*models.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryPostRepository) Create(_ context.Context, post *models.CommunityPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = r.nextID
	r.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memoryPostRepository) IncrementLikes(_ context.Context, id uint) (*models.CommunityPost, error) {
	return r.increment(id, func(p *models.CommunityPost) { p.LikesCount++ })
}

func (r *memoryPostRepository) IncrementComments(_ context.Context, id uint) (*models.CommunityPost, error) {
	return r.increment(id, func(p *models.CommunityPost) { p.CommentsCount++ })
}

func (r *memoryPostRepository) increment(id uint, bump func(*models.CommunityPost)) (*models.CommunityPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	bump(p)
	cp := *p
	return &cp, nil
}

func (r *memoryPostRepository) TagsByPost(_ context.Context, postID uint) ([]models.PostTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := r.tags[postID]
	out := make([]models.PostTag, len(tags))
	copy(out, tags)
	return out, nil
}

func (r *memoryPostRepository) CreateTag(_ context.Context, tag *models.PostTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag.ID = r.tagID
	r.tagID++
	r.tags[tag.PostID] = append(r.tags[tag.PostID], *tag)
	return nil
}

func (r *memoryPostRepository) HasLiked(_ context.Context, postID, userID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.likes[postID][userID]
	return ok, nil
}

func (r *memoryPostRepository) CreateLike(_ context.Context, like *models.PostLike) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byUser, ok := r.likes[like.PostID]
	if !ok {
		byUser = make(map[uint]*models.PostLike)
		r.likes[like.PostID] = byUser
	}
	if _, exists := byUser[like.UserID]; exists {
		return false, nil
	}
	like.ID = r.likeID
	r.likeID++
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	cp := *like
	byUser[like.UserID] = &cp
	return true, nil
}

func (r *memoryPostRepository) DeleteLike(_ context.Context, postID, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.likes[postID][userID]; !ok {
		return false, nil
	}
	delete(r.likes[postID], userID)
	return true, nil
}

func (r *memoryPostRepository) LikesByUser(_ context.Context, userID uint) ([]models.PostLike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.PostLike
	for _, byUser := range r.likes {
		if l, ok := byUser[userID]; ok {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

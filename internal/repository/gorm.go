package repository

import "gorm.io/gorm"

// NewGormRepositories wires all repositories against a single GORM handle.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Categories:   NewCategoryRepository(db),
		Providers:    NewProviderRepository(db),
		Appointments: NewAppointmentRepository(db),
		Posts:        NewPostRepository(db),
	}
}

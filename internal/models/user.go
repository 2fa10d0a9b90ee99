// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered HomeGenie resident.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"unique;not null" json:"username"`
	Password        string    `gorm:"not null" json:"-"`
	FullName        string    `gorm:"not null" json:"fullName"`
	Email           string    `gorm:"unique;not null" json:"email"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	ApartmentNumber string    `json:"apartmentNumber,omitempty"`
	ApartmentName   string    `json:"apartmentName,omitempty"`
	FloorNumber     string    `json:"floorNumber,omitempty"`
	Landmark        string    `json:"landmark,omitempty"`
	Pincode         string    `json:"pincode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Email           string `json:"email,omitempty"`
	ApartmentNumber string `json:"apartmentNumber,omitempty"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Email:           u.Email,
		ApartmentNumber: u.ApartmentNumber,
	}
}

// FeedAuthor is the projection attached to community feed posts.
// Same as Public minus the email address, which the feed never exposes.
func (u *User) FeedAuthor() *PublicUser {
	p := u.Public()
	p.Email = ""
	return &p
}

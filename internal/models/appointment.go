package models

import "time"

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
// Transitions between valid statuses are deliberately unrestricted.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booking of a service provider by a user for a
// given date and time slot.
type Appointment struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"not null;index" json:"userId"`
	ServiceProviderID uint              `gorm:"not null" json:"serviceProviderId"`
	CategoryID        uint              `gorm:"not null" json:"categoryId"`
	Description       string            `gorm:"not null" json:"description"`
	Date              time.Time         `gorm:"not null" json:"date"`
	TimeSlot          string            `gorm:"not null" json:"timeSlot"`
	Status            AppointmentStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// AppointmentDetail is an appointment with its provider and category
// attached for list responses.
type AppointmentDetail struct {
	Appointment
	Provider *ServiceProvider `json:"provider,omitempty"`
	Category *ServiceCategory `json:"category,omitempty"`
}

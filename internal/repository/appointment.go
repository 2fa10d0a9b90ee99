package repository

import (
	"context"
	"errors"

	"homegenie/internal/models"
	"homegenie/internal/observability"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository returns a new AppointmentRepository implementation.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "appointments.list_by_user", "appointments")
	defer span.End()

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&appointments).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return appointments, nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "appointments.get_by_id", "appointments")
	defer span.End()

	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "appointments.create", "appointments")
	defer span.End()

	if appointment.Status == "" {
		appointment.Status = models.StatusPending
	}
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateStatus sets the status of an appointment and returns the updated row.
// An unknown id is not an error: the result is simply nil.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "appointments.update_status", "appointments")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		span.RecordError(result.Error)
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &appointment, nil
}

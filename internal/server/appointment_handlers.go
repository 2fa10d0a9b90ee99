package server

import (
	"homegenie/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAppointments handles GET /api/appointments. Each appointment is
// returned with its provider and category attached.
func (s *Server) GetAppointments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	appointments, err := s.repos.Appointments.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	details := make([]models.AppointmentDetail, 0, len(appointments))
	for _, appointment := range appointments {
		provider, err := s.repos.Providers.GetByID(c.Context(), appointment.ServiceProviderID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		category, err := s.repos.Categories.GetByID(c.Context(), appointment.CategoryID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		details = append(details, models.AppointmentDetail{
			Appointment: appointment,
			Provider:    provider,
			Category:    category,
		})
	}

	return c.JSON(details)
}

type createAppointmentRequest struct {
	ServiceProviderID uint   `json:"serviceProviderId"`
	CategoryID        uint   `json:"categoryId"`
	Description       string `json:"description"`
	Date              string `json:"date"`
	TimeSlot          string `json:"timeSlot"`
}

// CreateAppointment handles POST /api/appointments
func (s *Server) CreateAppointment(c *fiber.Ctx) error {
	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.ServiceProviderID == 0 || req.CategoryID == 0 || req.Date == "" || req.TimeSlot == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Service provider, category, date, and time slot are required"))
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid date format"))
	}

	appointment := &models.Appointment{
		UserID:            currentUserID(c),
		ServiceProviderID: req.ServiceProviderID,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		Date:              date,
		TimeSlot:          req.TimeSlot,
		Status:            models.StatusPending,
	}
	if err := s.repos.Appointments.Create(c.Context(), appointment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus handles PATCH /api/appointments/:id/status.
// Only the appointment's owner may change its status; any transition
// between valid statuses is allowed.
func (s *Server) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if !req.Status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid status"))
	}

	appointment, err := s.repos.Appointments.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if appointment == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Appointment"))
	}
	if appointment.UserID != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to update this appointment"))
	}

	updated, err := s.repos.Appointments.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(updated)
}

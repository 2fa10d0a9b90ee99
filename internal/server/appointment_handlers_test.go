package server

import (
	"context"
	"net/http"
	"testing"

	"homegenie/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, s *Server) (*models.ServiceCategory, *models.ServiceProvider) {
	t.Helper()
	ctx := context.Background()

	category := &models.ServiceCategory{Name: "Plumbing", Description: "Water and pipe related issues", Icon: "drop-line", Color: "secondary"}
	require.NoError(t, s.repos.Categories.Create(ctx, category))

	provider := &models.ServiceProvider{
		Name:        "Richard's Plumbing",
		Description: "Expert plumbing services for all your needs",
		CategoryID:  category.ID,
		Rating:      49,
		IsVerified:  true,
	}
	require.NoError(t, s.repos.Providers.Create(ctx, provider))
	return category, provider
}

func TestCreateAppointment(t *testing.T) {
	s, app := newSQLiteTestServer(t)
	category, provider := seedCatalog(t, s)
	user := createTestUser(t, s, "alice")
	cookie := loginAs(t, s, user.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/appointments", map[string]any{
		"serviceProviderId": provider.ID,
		"categoryId":        category.ID,
		"description":       "Leaky faucet in the kitchen",
		"date":              "2024-06-01",
		"timeSlot":          "Morning (8AM - 12PM)",
	}, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, float64(user.ID), body["userId"])
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	s, app := newSQLiteTestServer(t)
	category, provider := seedCatalog(t, s)
	user := createTestUser(t, s, "alice")
	cookie := loginAs(t, s, user.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/appointments", map[string]any{
		"serviceProviderId": provider.ID,
		"categoryId":        category.ID,
		"description":       "Bad date",
		"date":              "not-a-date",
		"timeSlot":          "Morning (8AM - 12PM)",
	}, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing was stored
	appointments, err := s.repos.Appointments.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestCreateAppointment_RequiresSession(t *testing.T) {
	_, app := newSQLiteTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/appointments", map[string]any{
		"serviceProviderId": 1,
		"categoryId":        1,
		"date":              "2024-06-01",
		"timeSlot":          "Morning (8AM - 12PM)",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetAppointments_IncludesProviderAndCategory(t *testing.T) {
	s, app := newSQLiteTestServer(t)
	category, provider := seedCatalog(t, s)
	user := createTestUser(t, s, "alice")
	other := createTestUser(t, s, "bob")
	cookie := loginAs(t, s, user.ID)

	ctx := context.Background()
	require.NoError(t, s.repos.Appointments.Create(ctx, &models.Appointment{
		UserID:            user.ID,
		ServiceProviderID: provider.ID,
		CategoryID:        category.ID,
		Description:       "Mine",
		TimeSlot:          "Morning (8AM - 12PM)",
	}))
	require.NoError(t, s.repos.Appointments.Create(ctx, &models.Appointment{
		UserID:            other.ID,
		ServiceProviderID: provider.ID,
		CategoryID:        category.ID,
		Description:       "Not mine",
		TimeSlot:          "Afternoon (12PM - 4PM)",
	}))

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/appointments", nil, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	decodeBody(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Mine", body[0]["description"])

	providerBody, ok := body[0]["provider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Richard's Plumbing", providerBody["name"])

	categoryBody, ok := body[0]["category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Plumbing", categoryBody["name"])
}

func TestUpdateAppointmentStatus(t *testing.T) {
	s, app := newSQLiteTestServer(t)
	category, provider := seedCatalog(t, s)
	owner := createTestUser(t, s, "owner")
	stranger := createTestUser(t, s, "stranger")

	ctx := context.Background()
	appt := &models.Appointment{
		UserID:            owner.ID,
		ServiceProviderID: provider.ID,
		CategoryID:        category.ID,
		Description:       "Fix sink",
		TimeSlot:          "Morning (8AM - 12PM)",
	}
	require.NoError(t, s.repos.Appointments.Create(ctx, appt))

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPatch,
			"/api/appointments/1/status",
			map[string]string{"status": "cancelled"},
			loginAs(t, s, stranger.ID)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		current, err := s.repos.Appointments.GetByID(ctx, appt.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, current.Status)
	})

	t.Run("OwnerConfirms", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPatch,
			"/api/appointments/1/status",
			map[string]string{"status": "confirmed"},
			loginAs(t, s, owner.ID)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "confirmed", body["status"])
	})

	t.Run("BackwardTransitionAllowed", func(t *testing.T) {
		// completed -> pending is legal; transitions are unrestricted
		_, err := s.repos.Appointments.UpdateStatus(ctx, appt.ID, models.StatusCompleted)
		require.NoError(t, err)

		resp, err := app.Test(jsonRequest(http.MethodPatch,
			"/api/appointments/1/status",
			map[string]string{"status": "pending"},
			loginAs(t, s, owner.ID)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPatch,
			"/api/appointments/1/status",
			map[string]string{"status": "teleported"},
			loginAs(t, s, owner.ID)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownAppointment", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPatch,
			"/api/appointments/999/status",
			map[string]string{"status": "confirmed"},
			loginAs(t, s, owner.ID)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

package server

import (
	"homegenie/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.repos.Categories.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if categories == nil {
		categories = []models.ServiceCategory{}
	}
	return c.JSON(categories)
}

// GetCategory handles GET /api/categories/:id
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.repos.Categories.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if category == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Category"))
	}
	return c.JSON(category)
}

// GetProviders handles GET /api/providers with an optional categoryId filter
func (s *Server) GetProviders(c *fiber.Ctx) error {
	var providers []models.ServiceProvider
	var err error

	if categoryID := c.QueryInt("categoryId", 0); categoryID > 0 {
		providers, err = s.repos.Providers.ListByCategory(c.Context(), uint(categoryID))
	} else {
		providers, err = s.repos.Providers.List(c.Context())
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if providers == nil {
		providers = []models.ServiceProvider{}
	}
	return c.JSON(providers)
}

// GetProvider handles GET /api/providers/:id
func (s *Server) GetProvider(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	provider, err := s.repos.Providers.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if provider == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Service provider"))
	}
	return c.JSON(provider)
}

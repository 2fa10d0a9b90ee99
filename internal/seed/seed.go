// Package seed populates the catalog with its baseline fixtures and can
// generate demo data for development.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"homegenie/internal/models"
	"homegenie/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yml
var fixturesYAML []byte

type fixtureCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type fixtureProvider struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ImageURL     string `yaml:"imageUrl"`
	Category     string `yaml:"category"`
	Rating       int    `yaml:"rating"`
	IsVerified   bool   `yaml:"isVerified"`
	ResponseTime string `yaml:"responseTime"`
	BadgeOne     string `yaml:"badgeOne"`
	BadgeTwo     string `yaml:"badgeTwo"`
}

type fixtures struct {
	Categories []fixtureCategory `yaml:"categories"`
	Providers  []fixtureProvider `yaml:"providers"`
}

func loadFixtures() (*fixtures, error) {
	var f fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}
	return &f, nil
}

// Apply inserts the baseline categories and providers. It is idempotent:
// categories and providers already present by name are left untouched.
func Apply(ctx context.Context, repos *repository.Repositories) error {
	f, err := loadFixtures()
	if err != nil {
		return err
	}

	existing, err := repos.Categories.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	categoryIDs := make(map[string]uint, len(existing))
	for _, c := range existing {
		categoryIDs[c.Name] = c.ID
	}

	for _, fc := range f.Categories {
		if _, ok := categoryIDs[fc.Name]; ok {
			continue
		}
		category := &models.ServiceCategory{
			Name:        fc.Name,
			Description: fc.Description,
			Icon:        fc.Icon,
			Color:       fc.Color,
		}
		if err := repos.Categories.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category %q: %w", fc.Name, err)
		}
		categoryIDs[fc.Name] = category.ID
	}

	existingProviders, err := repos.Providers.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list providers: %w", err)
	}
	providerNames := make(map[string]struct{}, len(existingProviders))
	for _, p := range existingProviders {
		providerNames[p.Name] = struct{}{}
	}

	for _, fp := range f.Providers {
		if _, ok := providerNames[fp.Name]; ok {
			continue
		}
		categoryID, ok := categoryIDs[fp.Category]
		if !ok {
			return fmt.Errorf("provider %q references unknown category %q", fp.Name, fp.Category)
		}
		provider := &models.ServiceProvider{
			Name:         fp.Name,
			Description:  fp.Description,
			ImageURL:     fp.ImageURL,
			CategoryID:   categoryID,
			Rating:       fp.Rating,
			IsVerified:   fp.IsVerified,
			ResponseTime: fp.ResponseTime,
			BadgeOne:     fp.BadgeOne,
			BadgeTwo:     fp.BadgeTwo,
		}
		if err := repos.Providers.Create(ctx, provider); err != nil {
			return fmt.Errorf("failed to create provider %q: %w", fp.Name, err)
		}
	}

	return nil
}

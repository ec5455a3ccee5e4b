package seeder

import (
	"context"
	"fmt"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/repository"
)

var InitialCategories = []job.Category{
	{Name: "Event Management", Description: "Event planning, coordination, and management roles", Icon: "fas fa-calendar-alt"},
	{Name: "Catering & Food Service", Description: "Food preparation, serving, and catering support", Icon: "fas fa-utensils"},
	{Name: "Hospitality & Guest Services", Description: "Guest relations, reception, and hosting", Icon: "fas fa-concierge-bell"},
	{Name: "Technical & AV", Description: "Audio, video, lighting, and technical support", Icon: "fas fa-video"},
	{Name: "Security & Safety", Description: "Security, crowd control, and safety roles", Icon: "fas fa-shield-alt"},
	{Name: "Marketing & Promotion", Description: "Promotion, sales, and brand ambassador work", Icon: "fas fa-bullhorn"},
	{Name: "Setup & Logistics", Description: "Venue setup, breakdown, and logistics", Icon: "fas fa-boxes"},
	{Name: "Entertainment & Performance", Description: "Performers, hosts, and entertainers", Icon: "fas fa-music"},
	{Name: "Administrative", Description: "Registration, data entry, and office support", Icon: "fas fa-clipboard"},
	{Name: "Volunteer & Community", Description: "Community and charity volunteering", Icon: "fas fa-hands-helping"},
}

// CategoriesSeeder get-or-creates the job categories through the category
// repository.
type CategoriesSeeder struct {
	Categories []job.Category
}

func (CategoriesSeeder) Name() string { return "job_categories" }

func (s CategoriesSeeder) Run(ctx context.Context, db database.DB) (int, error) {
	if err := EnsureTableColumns(ctx, db, "job_categories", "id", "name", "description", "icon"); err != nil {
		return 0, err
	}

	items := s.Categories
	if items == nil {
		items = InitialCategories
	}

	repo := repository.NewPostgresCategoryRepository(db)
	created := 0
	for _, c := range items {
		_, isNew, err := repo.GetOrCreateCategory(ctx, c)
		if err != nil {
			return created, fmt.Errorf("category %q: %w", c.Name, err)
		}
		if isNew {
			created++
		}
	}
	return created, nil
}

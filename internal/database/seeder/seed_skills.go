package seeder

import (
	"context"
	"fmt"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/skill"
)

// InitialSkills is the starter catalog offered to volunteers before any skill is
// inferred.
var InitialSkills = []skill.Skill{
	{Name: "Event Coordination", Category: "Event Management", Description: "Planning and coordinating events"},
	{Name: "Crowd Management", Category: "Event Management", Description: "Managing large groups of people safely"},
	{Name: "Setup & Breakdown", Category: "Event Management", Description: "Setting up and breaking down event spaces"},
	{Name: "Food Service", Category: "Catering", Description: "Serving food and beverages"},
	{Name: "Kitchen Helper", Category: "Catering", Description: "Assisting in food preparation"},
	{Name: "Bartending", Category: "Catering", Description: "Mixing and serving drinks"},
	{Name: "Guest Relations", Category: "Hospitality", Description: "Welcoming and assisting guests"},
	{Name: "Reception & Registration", Category: "Hospitality", Description: "Checking in guests and handling registration"},
	{Name: "Hostess Services", Category: "Hospitality", Description: "Hosting and guiding guests"},
	{Name: "Audio/Visual Setup", Category: "Technical", Description: "Setting up sound and projection equipment"},
	{Name: "Photography", Category: "Technical", Description: "Event photography"},
	{Name: "Live Streaming", Category: "Technical", Description: "Streaming events online"},
	{Name: "Event Security", Category: "Security", Description: "Access control and venue security"},
	{Name: "First Aid", Category: "Safety", Description: "Providing first aid on site"},
	{Name: "Data Entry", Category: "Administrative", Description: "Recording attendee and event data"},
	{Name: "Customer Service", Category: "Administrative", Description: "Answering questions and resolving issues"},
	{Name: "Decoration", Category: "Creative", Description: "Decorating venues"},
	{Name: "Translation", Category: "Language", Description: "Translating for international guests"},
	{Name: "Entertainment", Category: "Performance", Description: "Performing or hosting entertainment"},
	{Name: "Sales & Promotion", Category: "Marketing", Description: "Promoting products and events"},
}

type SkillsSeeder struct {
	Skills []skill.Skill
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) (int, error) {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "description", "category"); err != nil {
		return 0, err
	}

	items := s.Skills
	if items == nil {
		items = InitialSkills
	}

	created := 0
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			n, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, description, category) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO NOTHING`,
				it.Name,
				it.Description,
				it.Category,
			)
			if err != nil {
				return fmt.Errorf("insert skill %q: %w", it.Name, err)
			}
			created += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

package repository

import (
	"context"
	"strings"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// SkillRepository covers the only writes the engine performs: get-or-create of a
// skill row and adding it to a user's skill set.
type SkillRepository interface {
	GetOrCreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	AddSkillToUser(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// GetOrCreateSkill inserts the skill when no row with the same name exists and
// returns the stored row either way. Concurrent callers converge on one row
// through the unique name constraint.
func (r *PostgresSkillRepository) GetOrCreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	name := strings.TrimSpace(s.Name)

	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, description, category)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, s.Description, s.Category,
	)
	if err != nil {
		return skill.Skill{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(category, '')
		 FROM skills
		 WHERE name = $1`,
		name,
	)

	var out skill.Skill
	if err := row.Scan(&out.ID, &out.Name, &out.Description, &out.Category); err != nil {
		return skill.Skill{}, err
	}
	return out, nil
}

// AddSkillToUser reports whether the membership was newly created.
func (r *PostgresSkillRepository) AddSkillToUser(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		userID, skillID,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	byUser, err := r.FindByUserIDs(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	return byUser[userID], nil
}

func (r *PostgresSkillRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]skill.Skill, error) {
	out := make(map[uuid.UUID][]skill.Skill, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT us.user_id, s.id, s.name, COALESCE(s.description, ''), COALESCE(s.category, '')
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = ANY($1::uuid[])
		 ORDER BY s.name ASC`,
		uuidStrings(userIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		var s skill.Skill
		if err := rows.Scan(&userID, &s.ID, &s.Name, &s.Description, &s.Category); err != nil {
			return nil, err
		}
		out[userID] = append(out[userID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package postgres

import (
	"context"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

// UserRepository reads users with their profile counters and skill sets.
type UserRepository struct {
	db     database.DB
	skills repository.SkillRepository
}

func NewUserRepository(db database.DB, skills repository.SkillRepository) *UserRepository {
	return &UserRepository{db: db, skills: skills}
}

const userSelect = `SELECT u.id, u.email, u.role,
	COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.bio, ''),
	COALESCE(u.location, ''), COALESCE(u.phone_number, ''), COALESCE(u.profile_picture, ''),
	COALESCE(u.is_verified, false), COALESCE(p.jobs_completed, 0), u.created_at
	FROM users u
	LEFT JOIN user_profiles p ON p.user_id = u.id`

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return user.User{}, err
	}

	skills, err := r.skills.FindByUserID(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	u.Skills = skills
	return u, nil
}

// ListVolunteers returns volunteers ordered by join date, optionally only those
// with an empty skill set.
func (r *UserRepository) ListVolunteers(ctx context.Context, f user.VolunteerFilter) ([]user.User, error) {
	q := userSelect + ` WHERE u.role = $1`
	if f.WithoutSkillsOnly {
		q += ` AND NOT EXISTS (SELECT 1 FROM user_skills us WHERE us.user_id = u.id)`
	}
	q += ` ORDER BY u.created_at ASC`

	rows, err := r.db.Query(ctx, q, string(user.RoleVolunteer))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
		ids = append(ids, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := r.skills.FindByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = skills[out[i].ID]
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(
		&u.ID, &u.Email, &role,
		&u.FirstName, &u.LastName, &u.Bio,
		&u.Location, &u.PhoneNumber, &u.ProfilePicture,
		&u.IsVerified, &u.JobsCompleted, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

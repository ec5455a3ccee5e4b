package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type VolunteerFilter struct {
	WithoutSkillsOnly bool
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	ListVolunteers(ctx context.Context, f VolunteerFilter) ([]User, error)
}

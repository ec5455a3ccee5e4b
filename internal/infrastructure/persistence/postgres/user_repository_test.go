package postgres

import (
	"testing"
	"time"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	values []any
	err    error
}

func (s stubRow) Scan(dest ...any) error {
	if s.err != nil {
		return s.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = s.values[i].(uuid.UUID)
		case *string:
			*p = s.values[i].(string)
		case *bool:
			*p = s.values[i].(bool)
		case *int:
			*p = s.values[i].(int)
		case *time.Time:
			*p = s.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanUser(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u, err := scanUser(stubRow{values: []any{
		id, "ana@example.com", "volunteer",
		"Ana", "Lopez", "", "Austin, TX", "", "",
		true, 4, created,
	}})
	require.NoError(t, err)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, user.RoleVolunteer, u.Role)
	assert.Equal(t, "Austin, TX", u.Location)
	assert.True(t, u.IsVerified)
	assert.Equal(t, 4, u.JobsCompleted)
	assert.Equal(t, created, u.CreatedAt)
}

func TestScanUser_NotFound(t *testing.T) {
	_, err := scanUser(stubRow{err: database.ErrNoRows})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

package repository

import (
	"testing"
	"time"

	"crewmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWhere_Empty(t *testing.T) {
	w := &where{}
	w.addUUID("x = $%d", nil)
	assert.Equal(t, "", w.clause())
	assert.Empty(t, w.args)
}

func TestJobFilter_Where(t *testing.T) {
	cat := uuid.New()
	from := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)
	w := JobFilter{
		Statuses:      []job.Status{job.StatusPublished},
		EventDateFrom: &from,
		CategoryID:    &cat,
		UrgentOnly:    true,
	}.where()

	assert.Equal(t,
		" WHERE j.status = ANY($1::text[]) AND j.event_date >= $2 AND j.category_id = $3 AND j.is_urgent = $4",
		w.clause(),
	)
	assert.Equal(t, []any{[]string{"published"}, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), cat, true}, w.args)
}

func TestReviewFilter_WhereAndLimit(t *testing.T) {
	reviewee := uuid.New()
	featured := true
	w := ReviewFilter{RevieweeID: &reviewee, Featured: &featured, Limit: 3}.where()

	assert.Equal(t, " WHERE r.reviewee_id = $1 AND r.is_featured = $2", w.clause())
	assert.Equal(t, "$3", w.next(3))
	assert.Len(t, w.args, 3)
}

func TestUUIDStrings(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, []string{id.String()}, uuidStrings([]uuid.UUID{id}))
}

package recommend

import (
	"sort"
	"time"

	"crewmatch/internal/domain/job"

	"github.com/google/uuid"
)

type DiverseParams struct {
	Limit         int
	PerCategory   int
	MaxCategories int
	Today         time.Time
}

// Diverse picks open jobs round-robin across categories, newest first within a
// category, taking at most PerCategory jobs from each of the first MaxCategories
// categories. Categories are ordered by their newest job.
func Diverse(candidates []job.Job, p DiverseParams) []job.Job {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	per := p.PerCategory
	if per <= 0 {
		per = 2
	}

	open := make([]job.Job, 0, len(candidates))
	for _, j := range candidates {
		if IsOpen(j, p.Today) {
			open = append(open, j)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		if !open[i].CreatedAt.Equal(open[j].CreatedAt) {
			return open[i].CreatedAt.After(open[j].CreatedAt)
		}
		return open[i].ID.String() < open[j].ID.String()
	})

	order := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID][]job.Job)
	for _, j := range open {
		if _, ok := groups[j.CategoryID]; !ok {
			if p.MaxCategories > 0 && len(order) >= p.MaxCategories {
				continue
			}
			order = append(order, j.CategoryID)
		}
		if len(groups[j.CategoryID]) < per {
			groups[j.CategoryID] = append(groups[j.CategoryID], j)
		}
	}

	out := make([]job.Job, 0, limit)
	for round := 0; round < per; round++ {
		for _, cat := range order {
			if len(out) >= limit {
				return out
			}
			g := groups[cat]
			if round < len(g) {
				out = append(out, g[round])
			}
		}
	}
	return out
}

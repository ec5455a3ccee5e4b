package recommend

import (
	"sort"
	"strings"
	"time"

	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
)

const DefaultLimit = 6

type Params struct {
	Limit int
	Today time.Time
}

// IsOpen reports whether j is published with an event date on or after today.
func IsOpen(j job.Job, today time.Time) bool {
	if !j.IsPublished() {
		return false
	}
	return !job.DateOnly(j.EventDate).Before(job.DateOnly(today))
}

// LocationParts splits a free-text location on commas into lower-cased, trimmed,
// non-empty parts.
func LocationParts(location string) []string {
	raw := strings.Split(strings.ToLower(location), ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchesLocation reports whether jobLocation contains any of parts, case-insensitive.
// No parts means no narrowing.
func MatchesLocation(jobLocation string, parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	loc := strings.ToLower(jobLocation)
	for _, p := range parts {
		if strings.Contains(loc, p) {
			return true
		}
	}
	return false
}

// Order sorts urgent jobs first, then newest first. Ties keep a stable id order so
// repeated calls over the same data return the same sequence.
func Order(jobs []job.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if a.IsUrgent != b.IsUrgent {
			return a.IsUrgent
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// Rank filters candidates for u and returns at most p.Limit jobs: open jobs only,
// narrowed by skill overlap when u has skills and by location when u has one.
func Rank(u user.User, candidates []job.Job, p Params) []job.Job {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	skills := u.SkillSet()
	parts := LocationParts(u.Location)

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	out := make([]job.Job, 0, len(candidates))
	for _, j := range candidates {
		if _, dup := seen[j.ID]; dup {
			continue
		}
		if !IsOpen(j, p.Today) {
			continue
		}
		if len(skills) > 0 && !skills.Intersects(j.RequiredSkills) {
			continue
		}
		if !MatchesLocation(j.Location, parts) {
			continue
		}
		seen[j.ID] = struct{}{}
		out = append(out, j)
	}

	Order(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

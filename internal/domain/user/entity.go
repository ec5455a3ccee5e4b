package user

import (
	"strings"
	"time"

	"crewmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID             uuid.UUID
	Email          string
	Role           Role
	FirstName      string
	LastName       string
	Bio            string
	Location       string
	PhoneNumber    string
	ProfilePicture string
	IsVerified     bool
	JobsCompleted  int
	Skills         []skill.Skill
	CreatedAt      time.Time
}

func (u User) IsVolunteer() bool {
	return u.Role == RoleVolunteer
}

func (u User) HasSkills() bool {
	return len(u.Skills) > 0
}

func (u User) SkillSet() skill.Set {
	return skill.NewSet(u.Skills...)
}

// ProfileFields returns the six fields counted for profile completeness.
func (u User) ProfileFields() []string {
	return []string{u.FirstName, u.LastName, u.Bio, u.Location, u.PhoneNumber, u.ProfilePicture}
}

func (u User) CompletedProfileFields() int {
	n := 0
	for _, f := range u.ProfileFields() {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

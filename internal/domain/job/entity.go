package job

import (
	"strings"
	"time"

	"crewmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusPublished  Status = "published"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
}

type Job struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Location       string
	CategoryID     uuid.UUID
	CategoryName   string
	PosterID       uuid.UUID
	Status         Status
	EventDate      time.Time
	IsUrgent       bool
	RequiredSkills []skill.Skill
	CreatedAt      time.Time
}

func (j Job) IsPublished() bool {
	return j.Status == StatusPublished
}

func (j Job) IsCompleted() bool {
	return j.Status == StatusCompleted
}

// Text is the lower-cased title and description used for keyword detection.
func (j Job) Text() string {
	return strings.ToLower(strings.Join([]string{j.Title, j.Description}, " "))
}

// Application is a volunteer's application to a job. Job is the snapshot the store
// joined in when reading the row; it may be zero if the store did not load it.
type Application struct {
	ID                 uuid.UUID
	JobID              uuid.UUID
	VolunteerID        uuid.UUID
	Status             ApplicationStatus
	RelevantExperience string
	AppliedAt          time.Time
	Job                Job
}

func (a Application) IsAccepted() bool {
	return a.Status == ApplicationAccepted
}

// Text is the lower-cased job title, job description and relevant experience.
func (a Application) Text() string {
	return strings.ToLower(strings.Join([]string{a.Job.Title, a.Job.Description, a.RelevantExperience}, " "))
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package dto

import (
	"time"

	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/skill"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
}

type JobResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	Category       string          `json:"category,omitempty"`
	EventDate      string          `json:"event_date"`
	IsUrgent       bool            `json:"is_urgent"`
	RequiredSkills []SkillResponse `json:"required_skills"`
	CreatedAt      time.Time       `json:"created_at"`
}

type HomeFeedResponse struct {
	Jobs          []JobResponse `json:"jobs"`
	Personalized  bool          `json:"personalized"`
	UrgentCount   int           `json:"urgent_count"`
	ThisWeekCount int           `json:"this_week_count"`
}

type SkillDetectionResponse struct {
	Detected []string        `json:"detected_categories"`
	Added    []SkillResponse `json:"added"`
	Skills   []SkillResponse `json:"skills"`
}

func NewSkillResponses(skills []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category, Description: s.Description})
	}
	return out
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		Category:       j.CategoryName,
		EventDate:      j.EventDate.Format(dateLayout),
		IsUrgent:       j.IsUrgent,
		RequiredSkills: NewSkillResponses(j.RequiredSkills),
		CreatedAt:      j.CreatedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

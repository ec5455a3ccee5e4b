package dto

type RecommendationQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

type UserIDParam struct {
	ID string `uri:"id" validate:"required,uuid"`
}

type EligibilityParams struct {
	JobID  string `uri:"jobID" validate:"required,uuid"`
	UserID string `uri:"userID" validate:"required,uuid"`
}

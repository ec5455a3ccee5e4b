package eligibility

import (
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/review"

	"github.com/google/uuid"
)

type ReasonCode int

const (
	ReasonAllowed ReasonCode = iota
	ReasonNotCoParticipants
	ReasonJobNotCompleted
	ReasonAlreadyReviewed
)

func (c ReasonCode) String() string {
	switch c {
	case ReasonAllowed:
		return "allowed"
	case ReasonNotCoParticipants:
		return "not_co_participants"
	case ReasonJobNotCompleted:
		return "job_not_completed"
	case ReasonAlreadyReviewed:
		return "already_reviewed"
	default:
		return "unknown"
	}
}

// Message is the user-facing text for the reason.
func (c ReasonCode) Message() string {
	switch c {
	case ReasonAllowed:
		return "Can leave review"
	case ReasonNotCoParticipants:
		return "You haven't worked together on this job"
	case ReasonJobNotCompleted:
		return "Job must be completed before leaving reviews"
	case ReasonAlreadyReviewed:
		return "You have already reviewed this person for this job"
	default:
		return "Review not allowed"
	}
}

type Decision struct {
	Allowed bool
	Reason  ReasonCode
}

func (d Decision) Message() string {
	return d.Reason.Message()
}

func allow() Decision { return Decision{Allowed: true, Reason: ReasonAllowed} }

func deny(c ReasonCode) Decision { return Decision{Allowed: false, Reason: c} }

// CoParticipants reports whether actor and target worked together on j: one of them
// is the poster and the other holds an accepted application in accepted.
func CoParticipants(actorID, targetID uuid.UUID, j job.Job, accepted []job.Application) bool {
	if actorID == uuid.Nil || targetID == uuid.Nil || actorID == targetID {
		return false
	}
	var volunteer uuid.UUID
	switch {
	case actorID == j.PosterID:
		volunteer = targetID
	case targetID == j.PosterID:
		volunteer = actorID
	default:
		return false
	}
	for _, a := range accepted {
		if a.JobID == j.ID && a.VolunteerID == volunteer && a.IsAccepted() {
			return true
		}
	}
	return false
}

// AlreadyReviewed reports whether reviews hold a review for the exact
// (job, reviewer, reviewee) triple.
func AlreadyReviewed(actorID, targetID, jobID uuid.UUID, reviews []review.Review) bool {
	for _, r := range reviews {
		if r.JobID == jobID && r.ReviewerID == actorID && r.RevieweeID == targetID {
			return true
		}
	}
	return false
}

// Check runs co-participation, completion and uniqueness in that order and stops at
// the first failure.
func Check(actorID, targetID uuid.UUID, j job.Job, applications []job.Application, reviews []review.Review) Decision {
	if !CoParticipants(actorID, targetID, j, applications) {
		return deny(ReasonNotCoParticipants)
	}
	if !j.IsCompleted() {
		return deny(ReasonJobNotCompleted)
	}
	if AlreadyReviewed(actorID, targetID, j.ID, reviews) {
		return deny(ReasonAlreadyReviewed)
	}
	return allow()
}

// Package inference derives skill tags from a user's activity text using a Lexicon.
// It is pure: callers supply the activity snapshot and persist the result.
package inference

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/lexicon"
	"crewmatch/internal/domain/skill"
)

const InferredDescription = "Auto-detected from user activity"

// Activity is the snapshot skill inference reads for one user.
type Activity struct {
	AcceptedApplications []job.Application
	PostedJobs           []job.Job
}

// Corpus returns one lower-cased text segment per accepted application and per
// posted job. Applications that are not accepted are skipped.
func Corpus(a Activity) []string {
	out := make([]string, 0, len(a.AcceptedApplications)+len(a.PostedJobs))
	for _, app := range a.AcceptedApplications {
		if !app.IsAccepted() {
			continue
		}
		out = append(out, app.Text())
	}
	for _, j := range a.PostedJobs {
		out = append(out, j.Text())
	}
	return out
}

// Detect returns the lexicon categories with at least one keyword in any corpus
// segment, in lexicon order. Keywords never match across segment boundaries.
func Detect(lex *lexicon.Lexicon, corpus []string) []string {
	if len(corpus) == 0 {
		return nil
	}
	var detected []string
	lex.Each(func(e lexicon.Entry) {
		for _, text := range corpus {
			if e.Matches(text) {
				detected = append(detected, e.Category)
				return
			}
		}
	})
	return detected
}

// SkillName turns a lexicon category into a display name: underscores become
// spaces and each word is title-cased ("event_management" -> "Event Management").
func SkillName(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		w = strings.ToLower(w)
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Merge returns existing followed by every skill of added not already present.
// Nothing in existing is ever dropped.
func Merge(existing, added []skill.Skill) []skill.Skill {
	seen := skill.NewSet(existing...)
	out := append(make([]skill.Skill, 0, len(existing)+len(added)), existing...)
	for _, s := range added {
		if seen.Add(s) {
			out = append(out, s)
		}
	}
	return out
}

package skill

import (
	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
}

// Set indexes skills by id. Duplicate ids collapse to one entry.
type Set map[uuid.UUID]Skill

func NewSet(skills ...Skill) Set {
	s := make(Set, len(skills))
	for _, sk := range skills {
		s.Add(sk)
	}
	return s
}

func (s Set) Add(sk Skill) bool {
	if sk.ID == uuid.Nil {
		return false
	}
	if _, ok := s[sk.ID]; ok {
		return false
	}
	s[sk.ID] = sk
	return true
}

func (s Set) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Intersects(skills []Skill) bool {
	for _, sk := range skills {
		if s.Has(sk.ID) {
			return true
		}
	}
	return false
}

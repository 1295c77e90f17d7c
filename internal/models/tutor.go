package models

import "strings"

// Modality is the delivery mode of a session or slot.
type Modality string

const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in_person"
)

// ModalityFilter widens Modality with the catch-all value used by search
// and matching requests.
const ModalityAll = "all"

// Tutor represents an instructor available for booking. Records are
// immutable after construction; an update produces a new value.
type Tutor struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Department    string     `json:"department"`
	Subjects      []string   `json:"subjects"`
	Rating        float64    `json:"rating"`
	TotalSessions int        `json:"total_sessions"`
	Bio           string     `json:"bio,omitempty"`
	Modalities    []Modality `json:"modalities"`
}

// TeachesSubject reports whether the tutor teaches the given subject.
// Matching is exact but case-insensitive.
func (t Tutor) TeachesSubject(subject string) bool {
	for _, s := range t.Subjects {
		if strings.EqualFold(s, subject) {
			return true
		}
	}
	return false
}

// SupportsModality reports whether the tutor offers the given modality.
func (t Tutor) SupportsModality(m Modality) bool {
	for _, mode := range t.Modalities {
		if mode == m {
			return true
		}
	}
	return false
}

// TutorFilter captures search options for listing tutors.
type TutorFilter struct {
	Search     string
	Subject    string
	Department string
	ExcludeID  string
}

package models

// Student represents a learner who books tutoring sessions. Immutable
// after construction.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Program       string `json:"program"`
	Year          int    `json:"year"`
}

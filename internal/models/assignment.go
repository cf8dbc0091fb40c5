package models

import (
	"time"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// AssignmentGrade is the lightweight per-assignment score entry, keyed
// implicitly by student id.
type AssignmentGrade struct {
	Score     float64
	StudentID string
	Feedback  string
}

// Assignment is coursework issued on a course with a due date.
type Assignment struct {
	title       string
	description string
	dueDate     time.Time
	course      *Course
	grades      []AssignmentGrade
}

// NewAssignment builds an assignment owned by the given course.
func NewAssignment(title, description string, dueDate time.Time, course *Course) *Assignment {
	return &Assignment{
		title:       title,
		description: description,
		dueDate:     dueDate,
		course:      course,
	}
}

func (a *Assignment) Title() string       { return a.title }
func (a *Assignment) Description() string { return a.description }
func (a *Assignment) DueDate() time.Time  { return a.dueDate }
func (a *Assignment) Course() *Course     { return a.course }

// IsOverdue reports whether the due date has passed.
func (a *Assignment) IsOverdue() bool {
	return time.Now().After(a.dueDate)
}

// AddGrade records a score for a student. The score must be within
// [0, 100] and a student may only be graded once per assignment.
func (a *Assignment) AddGrade(score float64, studentID, feedback string) error {
	if score < 0 || score > 100 {
		return apperrors.Clone(apperrors.ErrValidation, "score must be between 0 and 100")
	}
	for _, g := range a.grades {
		if g.StudentID == studentID {
			return apperrors.Clone(apperrors.ErrDuplicate,
				"grade already exists for student "+studentID)
		}
	}
	a.grades = append(a.grades, AssignmentGrade{Score: score, StudentID: studentID, Feedback: feedback})
	return nil
}

// Grades returns the ordered grade entries.
func (a *Assignment) Grades() []AssignmentGrade { return a.grades }

// AverageScore returns the mean of all recorded scores, 0 when empty.
func (a *Assignment) AverageScore() float64 {
	if len(a.grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range a.grades {
		sum += g.Score
	}
	return sum / float64(len(a.grades))
}

// GradeCount returns the number of recorded scores.
func (a *Assignment) GradeCount() int { return len(a.grades) }

package models

import (
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Grade ties a student's score on an assignment together with optional
// feedback. Student and assignment references are required.
type Grade struct {
	student    *Student
	assignment *Assignment
	score      float64
	feedback   string
}

// NewGrade validates the references and score bounds at construction.
func NewGrade(student *Student, assignment *Assignment, score float64, feedback string) (*Grade, error) {
	if student == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "grade student is required")
	}
	if assignment == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "grade assignment is required")
	}
	g := &Grade{student: student, assignment: assignment, feedback: feedback}
	if err := g.SetScore(score); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grade) Student() *Student       { return g.student }
func (g *Grade) Assignment() *Assignment { return g.assignment }
func (g *Grade) Score() float64          { return g.score }

// SetScore rejects values outside [0, 100].
func (g *Grade) SetScore(value float64) error {
	if value < 0 || value > 100 {
		return apperrors.Clone(apperrors.ErrValidation, "score must be between 0 and 100")
	}
	g.score = value
	return nil
}

func (g *Grade) Feedback() string { return g.feedback }

func (g *Grade) SetFeedback(value string) { g.feedback = value }

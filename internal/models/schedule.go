package models

import (
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Schedule is a course's single meeting slot.
type Schedule struct {
	course   *Course
	day      string
	timeSlot string
}

// NewSchedule builds a schedule; the course reference is required.
func NewSchedule(course *Course, day, timeSlot string) (*Schedule, error) {
	if course == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "schedule course is required")
	}
	return &Schedule{course: course, day: day, timeSlot: timeSlot}, nil
}

func (s *Schedule) Course() *Course { return s.course }
func (s *Schedule) Day() string     { return s.day }
func (s *Schedule) Time() string    { return s.timeSlot }

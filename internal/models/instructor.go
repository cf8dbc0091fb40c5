package models

import (
	"strings"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Instructor teaches courses and owns the assignments issued on them.
type Instructor struct {
	person       PersonInfo
	instructorID string
	taught       []*Course
	assignments  []*Assignment
}

// NewInstructor validates the person fields and builds an instructor record.
func NewInstructor(name, email, contactNumber, address, instructorID string) (*Instructor, error) {
	person, err := NewPersonInfo(name, email, contactNumber, address)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(instructorID) == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "instructor id cannot be empty")
	}
	return &Instructor{person: person, instructorID: instructorID}, nil
}

func (i *Instructor) Role() Role          { return RoleInstructor }
func (i *Instructor) Person() *PersonInfo { return &i.person }

// Courses implements Member; for an instructor these are the courses taught.
func (i *Instructor) Courses() []*Course { return i.taught }

func (i *Instructor) InstructorID() string { return i.instructorID }

func (i *Instructor) CoursesTaught() []*Course { return i.taught }

func (i *Instructor) Assignments() []*Assignment { return i.assignments }

// TeachCourse adds a course to the taught list; re-adding is a reported no-op.
func (i *Instructor) TeachCourse(course *Course) error {
	if course == nil {
		return apperrors.Clone(apperrors.ErrValidation, "course is required")
	}
	for _, c := range i.taught {
		if c.Code() == course.Code() {
			return apperrors.Clone(apperrors.ErrDuplicate, "instructor already teaches "+course.Code())
		}
	}
	i.taught = append(i.taught, course)
	return nil
}

// AssignAssignment tracks an assignment issued by this instructor. The
// assignment's course must be one the instructor teaches.
func (i *Instructor) AssignAssignment(assignment *Assignment) error {
	if assignment == nil {
		return apperrors.Clone(apperrors.ErrValidation, "assignment is required")
	}
	teaches := false
	for _, c := range i.taught {
		if assignment.Course() != nil && c.Code() == assignment.Course().Code() {
			teaches = true
			break
		}
	}
	if !teaches {
		return apperrors.Clone(apperrors.ErrValidation, "course not taught by instructor")
	}
	for _, a := range i.assignments {
		if a.Title() == assignment.Title() {
			return apperrors.Clone(apperrors.ErrDuplicate, "assignment already assigned: "+assignment.Title())
		}
	}
	i.assignments = append(i.assignments, assignment)
	return nil
}

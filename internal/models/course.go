package models

import (
	"strings"
	"time"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// GradeKey identifies a grade within a course: one grade per student per
// assignment.
type GradeKey struct {
	StudentID       string
	AssignmentTitle string
}

// Course is the central shared entity: students enroll on it, one
// instructor teaches it, assignments, grades, a schedule and discussion
// threads hang off it.
type Course struct {
	name        string
	code        string
	instructor  *Instructor
	units       int
	enrolled    []*Student
	grades      map[GradeKey]*Grade
	assignments []*Assignment
	schedule    *Schedule
	threads     []*DiscussionThread
}

// NewCourse builds a course. The instructor reference is required and
// never nil.
func NewCourse(name, code string, instructor *Instructor, units int) (*Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "course name cannot be empty")
	}
	if strings.TrimSpace(code) == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "course code cannot be empty")
	}
	if instructor == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "course instructor is required")
	}
	if units <= 0 {
		return nil, apperrors.Clone(apperrors.ErrValidation, "course units must be positive")
	}
	return &Course{
		name:       name,
		code:       code,
		instructor: instructor,
		units:      units,
		grades:     make(map[GradeKey]*Grade),
	}, nil
}

func (c *Course) Name() string            { return c.name }
func (c *Course) Code() string            { return c.code }
func (c *Course) Instructor() *Instructor { return c.instructor }
func (c *Course) Units() int              { return c.units }

// EnrolledStudents returns the ordered course-side enrollment list.
func (c *Course) EnrolledStudents() []*Student { return c.enrolled }

// AddStudent appends to the course-side list; re-adding is a reported no-op.
func (c *Course) AddStudent(student *Student) error {
	if student == nil {
		return apperrors.Clone(apperrors.ErrValidation, "student is required")
	}
	for _, s := range c.enrolled {
		if s.StudentID() == student.StudentID() {
			return apperrors.Clone(apperrors.ErrDuplicate, "student already enrolled in "+c.code)
		}
	}
	c.enrolled = append(c.enrolled, student)
	return nil
}

// RemoveStudent drops the student from the course-side list.
func (c *Course) RemoveStudent(student *Student) error {
	if student == nil {
		return apperrors.Clone(apperrors.ErrValidation, "student is required")
	}
	for i, s := range c.enrolled {
		if s.StudentID() == student.StudentID() {
			c.enrolled = append(c.enrolled[:i], c.enrolled[i+1:]...)
			return nil
		}
	}
	return apperrors.Clone(apperrors.ErrNotFound, "student not enrolled in "+c.code)
}

// AddGrade stores a grade keyed by (student, assignment). A duplicate key
// reports a conflict and leaves the mapping unchanged.
func (c *Course) AddGrade(grade *Grade) error {
	if grade == nil {
		return apperrors.Clone(apperrors.ErrValidation, "grade is required")
	}
	key := GradeKey{
		StudentID:       grade.Student().StudentID(),
		AssignmentTitle: grade.Assignment().Title(),
	}
	if _, exists := c.grades[key]; exists {
		return apperrors.Clone(apperrors.ErrDuplicate,
			"grade already exists for student "+key.StudentID+" on "+key.AssignmentTitle)
	}
	c.grades[key] = grade
	return nil
}

// Grades exposes the course grade mapping.
func (c *Course) Grades() map[GradeKey]*Grade { return c.grades }

// GradeFor looks up the grade for a (student, assignment) pair.
func (c *Course) GradeFor(studentID, assignmentTitle string) (*Grade, bool) {
	g, ok := c.grades[GradeKey{StudentID: studentID, AssignmentTitle: assignmentTitle}]
	return g, ok
}

// AssignAssignment parses the due date, checks it lies in the future and
// appends a new assignment. Any failure leaves the assignment list untouched.
func (c *Course) AssignAssignment(title, description, dueDate string) (*Assignment, error) {
	due, err := time.Parse(DueDateLayout, dueDate)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code,
			"invalid due date, expected "+DueDateLayout)
	}
	if !due.After(time.Now()) {
		return nil, apperrors.Clone(apperrors.ErrValidation, "due date must be in the future")
	}
	for _, a := range c.assignments {
		if a.Title() == title && a.DueDate().Equal(due) {
			return nil, apperrors.Clone(apperrors.ErrDuplicate,
				"assignment already exists: "+title)
		}
	}
	assignment := NewAssignment(title, description, due, c)
	c.assignments = append(c.assignments, assignment)
	return assignment, nil
}

// Assignments returns the ordered assignment list.
func (c *Course) Assignments() []*Assignment { return c.assignments }

// AssignmentByTitle finds an assignment on this course.
func (c *Course) AssignmentByTitle(title string) (*Assignment, bool) {
	for _, a := range c.assignments {
		if a.Title() == title {
			return a, true
		}
	}
	return nil, false
}

func (c *Course) Schedule() *Schedule { return c.schedule }

// SetSchedule attaches the course's single schedule; a second attach is a
// reported conflict.
func (c *Course) SetSchedule(schedule *Schedule) error {
	if schedule == nil {
		return apperrors.Clone(apperrors.ErrValidation, "schedule is required")
	}
	if c.schedule != nil {
		return apperrors.Clone(apperrors.ErrDuplicate, "course already has a schedule")
	}
	c.schedule = schedule
	return nil
}

// Threads returns the ordered discussion threads.
func (c *Course) Threads() []*DiscussionThread { return c.threads }

// AddThread appends a discussion thread to the course.
func (c *Course) AddThread(thread *DiscussionThread) error {
	if thread == nil {
		return apperrors.Clone(apperrors.ErrValidation, "thread is required")
	}
	c.threads = append(c.threads, thread)
	return nil
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

func futureDue() string {
	return time.Now().Add(48 * time.Hour).Format(DueDateLayout)
}

func TestNewCourseRequiresInstructor(t *testing.T) {
	_, err := NewCourse("Data Structures", "CS201", nil, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCourseAddRemoveStudent(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))
	s := newTestStudent(t, "S1")

	require.NoError(t, c.AddStudent(s))
	err := c.AddStudent(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, c.EnrolledStudents(), 1)

	require.NoError(t, c.RemoveStudent(s))
	assert.Empty(t, c.EnrolledStudents())
	assert.ErrorIs(t, c.RemoveStudent(s), apperrors.ErrNotFound)
}

func TestCourseAssignAssignment(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	a, err := c.AssignAssignment("Homework 1", "linked lists", futureDue())
	require.NoError(t, err)
	assert.Equal(t, "Homework 1", a.Title())
	assert.Same(t, c, a.Course())
	require.Len(t, c.Assignments(), 1)
}

func TestCourseAssignAssignmentMalformedDate(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	_, err := c.AssignAssignment("Homework 1", "linked lists", "03/15/2030")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, c.Assignments())
}

func TestCourseAssignAssignmentPastDue(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	past := time.Now().Add(-time.Hour).Format(DueDateLayout)
	_, err := c.AssignAssignment("Homework 1", "linked lists", past)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, c.Assignments())
}

func TestCourseAssignAssignmentDuplicate(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))
	due := futureDue()

	_, err := c.AssignAssignment("Homework 1", "linked lists", due)
	require.NoError(t, err)

	_, err = c.AssignAssignment("Homework 1", "linked lists again", due)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, c.Assignments(), 1)
}

func TestCourseAddGradeDuplicateKey(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))
	s := newTestStudent(t, "S1")
	a, err := c.AssignAssignment("Homework 1", "linked lists", futureDue())
	require.NoError(t, err)

	first, err := NewGrade(s, a, 88, "solid")
	require.NoError(t, err)
	require.NoError(t, c.AddGrade(first))

	second, err := NewGrade(s, a, 95, "resubmitted")
	require.NoError(t, err)
	err = c.AddGrade(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, c.Grades(), 1)

	stored, ok := c.GradeFor("S1", "Homework 1")
	require.True(t, ok)
	assert.Equal(t, 88.0, stored.Score())
}

func TestCourseSingleSchedule(t *testing.T) {
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	sched, err := NewSchedule(c, "Monday", "09:00 AM - 11:00 AM")
	require.NoError(t, err)
	require.NoError(t, c.SetSchedule(sched))

	other, err := NewSchedule(c, "Tuesday", "01:00 PM - 03:00 PM")
	require.NoError(t, err)
	err = c.SetSchedule(other)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, "Monday", c.Schedule().Day())
}

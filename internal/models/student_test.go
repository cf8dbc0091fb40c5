package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

func newTestStudent(t *testing.T, id string) *Student {
	t.Helper()
	s, err := NewStudent("Ana Reyes", "ana@campus.edu", "0917123456", "12 Mabini St",
		id, "2", "BSCS")
	require.NoError(t, err)
	return s
}

func newTestInstructor(t *testing.T, id string) *Instructor {
	t.Helper()
	i, err := NewInstructor("Leo Cruz", "leo@campus.edu", "0918765432", "4 Rizal Ave", id)
	require.NoError(t, err)
	return i
}

func newTestCourse(t *testing.T, code string, instructor *Instructor) *Course {
	t.Helper()
	c, err := NewCourse("Data Structures", code, instructor, 3)
	require.NoError(t, err)
	return c
}

func TestStudentGPABounds(t *testing.T) {
	s := newTestStudent(t, "S1")

	require.NoError(t, s.SetGPA(0))
	require.NoError(t, s.SetGPA(4.0))
	require.NoError(t, s.SetGPA(3.25))

	err := s.SetGPA(4.01)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 3.25, s.GPA())

	err = s.SetGPA(-0.1)
	require.Error(t, err)
	assert.Equal(t, 3.25, s.GPA())
}

func TestStudentEnrollIdempotent(t *testing.T) {
	s := newTestStudent(t, "S1")
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	require.NoError(t, s.Enroll(c))
	require.Len(t, s.EnrolledCourses(), 1)

	err := s.Enroll(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, s.EnrolledCourses(), 1)
}

func TestStudentEnrollDoesNotTouchCourseSide(t *testing.T) {
	s := newTestStudent(t, "S1")
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	require.NoError(t, s.Enroll(c))
	assert.Empty(t, c.EnrolledStudents())
}

func TestStudentWithdraw(t *testing.T) {
	s := newTestStudent(t, "S1")
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	require.NoError(t, s.Enroll(c))
	require.NoError(t, s.Withdraw(c))
	assert.Empty(t, s.EnrolledCourses())

	err := s.Withdraw(c)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStudentLedger(t *testing.T) {
	s := newTestStudent(t, "S1")
	c := newTestCourse(t, "CS201", newTestInstructor(t, "I1"))

	require.NoError(t, s.AddLedgerGrade(c, "92.5"))
	require.Len(t, s.Ledger(), 1)
	entry := s.Ledger()[0]
	assert.Equal(t, "CS201", entry.CourseCode)
	assert.Equal(t, "Data Structures", entry.CourseName)
	assert.Equal(t, "92.5", entry.Grade)
}

func TestStudentImplementsMember(t *testing.T) {
	var m Member = newTestStudent(t, "S1")
	assert.Equal(t, RoleStudent, m.Role())
	assert.Equal(t, "Ana Reyes", m.Person().Name())
}

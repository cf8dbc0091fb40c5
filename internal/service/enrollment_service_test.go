package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

func TestEnrollmentServiceEnroll(t *testing.T) {
	repo := newTestRepo()
	instructor := seedInstructor(t, repo, "I1")
	course := seedCourse(t, repo, "C1", instructor)
	student := seedStudent(t, repo, "S1")

	svc := NewEnrollmentService(repo, nil, nil)

	link, err := svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"})
	require.NoError(t, err)
	assert.Same(t, student, link.Student)
	assert.Same(t, course, link.Course)
	assert.Len(t, svc.List(), 1)

	_, err = svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, svc.List(), 1)
	assert.Len(t, student.EnrolledCourses(), 1)
	assert.Len(t, course.EnrolledStudents(), 1)
}

func TestEnrollmentServiceMissingEnds(t *testing.T) {
	repo := newTestRepo()
	instructor := seedInstructor(t, repo, "I1")
	seedCourse(t, repo, "C1", instructor)
	seedStudent(t, repo, "S1")

	svc := NewEnrollmentService(repo, nil, nil)

	_, err := svc.Enroll(EnrollRequest{StudentID: "S9", CourseCode: "C1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C9"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Enroll(EnrollRequest{StudentID: "", CourseCode: "C1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEnrollmentServiceUnenroll(t *testing.T) {
	repo := newTestRepo()
	instructor := seedInstructor(t, repo, "I1")
	course := seedCourse(t, repo, "C1", instructor)
	student := seedStudent(t, repo, "S1")

	svc := NewEnrollmentService(repo, nil, nil)
	_, err := svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"})
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"}))
	assert.Empty(t, svc.List())
	assert.Empty(t, student.EnrolledCourses())
	assert.Empty(t, course.EnrolledStudents())

	err = svc.Unenroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEnrollmentServiceListings(t *testing.T) {
	repo := newTestRepo()
	instructor := seedInstructor(t, repo, "I1")
	seedCourse(t, repo, "C1", instructor)
	seedCourse(t, repo, "C2", instructor)
	seedStudent(t, repo, "S1")

	svc := NewEnrollmentService(repo, nil, nil)
	_, err := svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C1"})
	require.NoError(t, err)
	_, err = svc.Enroll(EnrollRequest{StudentID: "S1", CourseCode: "C2"})
	require.NoError(t, err)

	courses, err := svc.CoursesOf("S1")
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	roster, err := svc.Roster("C1")
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	_, err = svc.CoursesOf("S9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.Roster("C9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

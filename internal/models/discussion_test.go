package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

func TestDiscussionThreadPosts(t *testing.T) {
	instructor := newTestInstructor(t, "I1")
	course := newTestCourse(t, "CS201", instructor)
	student := newTestStudent(t, "S1")

	thread, err := NewDiscussionThread("t1", course, "Week 1 questions", instructor, time.Now())
	require.NoError(t, err)

	require.NoError(t, thread.AddPost(student, "When is the first quiz?", time.Now()))
	require.Len(t, thread.Posts(), 1)
	assert.Equal(t, "Ana Reyes", thread.Posts()[0].Author)

	err = thread.AddPost(student, "   ", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, thread.Posts(), 1)
}

func TestNewDiscussionThreadValidation(t *testing.T) {
	instructor := newTestInstructor(t, "I1")
	course := newTestCourse(t, "CS201", instructor)

	_, err := NewDiscussionThread("t1", nil, "Week 1", instructor, time.Now())
	require.Error(t, err)

	_, err = NewDiscussionThread("t1", course, "Week 1", nil, time.Now())
	require.Error(t, err)

	_, err = NewDiscussionThread("t1", course, "  ", instructor, time.Now())
	require.Error(t, err)
}

func TestInstructorAssignments(t *testing.T) {
	instructor := newTestInstructor(t, "I1")
	course := newTestCourse(t, "CS201", instructor)
	other := newTestCourse(t, "CS301", newTestInstructor(t, "I2"))

	require.NoError(t, instructor.TeachCourse(course))
	assert.ErrorIs(t, instructor.TeachCourse(course), apperrors.ErrDuplicate)

	mine := NewAssignment("Homework 1", "", time.Now().Add(time.Hour), course)
	foreign := NewAssignment("Homework 2", "", time.Now().Add(time.Hour), other)

	require.NoError(t, instructor.AssignAssignment(mine))
	assert.ErrorIs(t, instructor.AssignAssignment(mine), apperrors.ErrDuplicate)
	assert.ErrorIs(t, instructor.AssignAssignment(foreign), apperrors.ErrValidation)
	assert.Len(t, instructor.Assignments(), 1)
}

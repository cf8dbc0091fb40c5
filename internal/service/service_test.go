package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	"github.com/elearnhq/campus-records/internal/repository"
)

// The repository is itself an in-memory structure, so service tests run
// against the real thing instead of mocks.

func newTestRepo() *repository.Repository {
	return repository.New(zap.NewNop())
}

func seedInstructor(t *testing.T, repo *repository.Repository, id string) *models.Instructor {
	t.Helper()
	instructor, err := models.NewInstructor("Leo Cruz", "leo@campus.edu", "0918765432",
		"4 Rizal Ave", id)
	require.NoError(t, err)
	require.NoError(t, repo.AddInstructor(instructor))
	return instructor
}

func seedCourse(t *testing.T, repo *repository.Repository, code string, instructor *models.Instructor) *models.Course {
	t.Helper()
	course, err := models.NewCourse("Data Structures", code, instructor, 3)
	require.NoError(t, err)
	require.NoError(t, repo.AddCourse(course))
	require.NoError(t, instructor.TeachCourse(course))
	return course
}

func seedStudent(t *testing.T, repo *repository.Repository, id string) *models.Student {
	t.Helper()
	student, err := models.NewStudent("Ana Reyes", "ana@campus.edu", "0917123456",
		"12 Mabini St", id, "2", "BSCS")
	require.NoError(t, err)
	require.NoError(t, repo.AddStudent(student))
	return student
}

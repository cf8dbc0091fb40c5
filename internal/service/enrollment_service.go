package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type enrollmentRepository interface {
	StudentByID(id string) (*models.Student, bool)
	CourseByCode(code string) (*models.Course, bool)
	Enroll(s *models.Student, c *models.Course) error
	Unenroll(s *models.Student, c *models.Course) error
	Enrollments() []models.Enrollment
	CoursesByStudent(s *models.Student) []*models.Course
	StudentsByCourse(c *models.Course) []*models.Student
}

// EnrollRequest identifies the (student, course) pair to link or unlink.
type EnrollRequest struct {
	StudentID  string `validate:"required"`
	CourseCode string `validate:"required"`
}

// EnrollmentService orchestrates symmetric enrollment bookkeeping.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, logger: logger}
}

// Enroll links a student to a course; a repeated pair reports a conflict.
func (s *EnrollmentService) Enroll(req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid enrollment payload")
	}
	student, ok := s.repo.StudentByID(req.StudentID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "student not found: "+req.StudentID)
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	if err := s.repo.Enroll(student, course); err != nil {
		return nil, err
	}
	s.logger.Info("student enrolled",
		zap.String("student_id", req.StudentID),
		zap.String("course_code", req.CourseCode))
	return &models.Enrollment{Student: student, Course: course}, nil
}

// Unenroll removes the link from both sides and the enrollment set.
func (s *EnrollmentService) Unenroll(req EnrollRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid enrollment payload")
	}
	student, ok := s.repo.StudentByID(req.StudentID)
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "student not found: "+req.StudentID)
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	if err := s.repo.Unenroll(student, course); err != nil {
		return err
	}
	s.logger.Info("student unenrolled",
		zap.String("student_id", req.StudentID),
		zap.String("course_code", req.CourseCode))
	return nil
}

// List returns every enrollment link.
func (s *EnrollmentService) List() []models.Enrollment {
	return s.repo.Enrollments()
}

// CoursesOf returns the courses a student is linked to.
func (s *EnrollmentService) CoursesOf(studentID string) ([]*models.Course, error) {
	student, ok := s.repo.StudentByID(studentID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "student not found: "+studentID)
	}
	return s.repo.CoursesByStudent(student), nil
}

// Roster returns the students linked to a course.
func (s *EnrollmentService) Roster(courseCode string) ([]*models.Student, error) {
	course, ok := s.repo.CourseByCode(courseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+courseCode)
	}
	return s.repo.StudentsByCourse(course), nil
}

package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type studentRepository interface {
	StudentByID(id string) (*models.Student, bool)
	AddStudent(s *models.Student) error
	Students() []*models.Student
}

// RegisterStudentRequest describes a new student record.
type RegisterStudentRequest struct {
	StudentID     string `validate:"required"`
	Name          string `validate:"required"`
	Email         string `validate:"required"`
	ContactNumber string `validate:"required"`
	Address       string `validate:"required"`
	YearLevel     string `validate:"required"`
	Program       string `validate:"required"`
	BirthDate     string
}

// UpdateStudentRequest carries optional profile changes; empty fields are
// left untouched.
type UpdateStudentRequest struct {
	StudentID     string `validate:"required"`
	Name          string
	Email         string
	ContactNumber string
	Address       string
}

// StudentService manages student registration and profile mutation.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Register validates and inserts a student with a unique id.
func (s *StudentService) Register(req RegisterStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid student payload")
	}
	student, err := models.NewStudent(req.Name, req.Email, req.ContactNumber, req.Address,
		req.StudentID, req.YearLevel, req.Program)
	if err != nil {
		return nil, err
	}
	if req.BirthDate != "" {
		birth, err := time.Parse(models.DateLayout, req.BirthDate)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code,
				"invalid birth date, expected "+models.DateLayout)
		}
		student.SetBirthDate(birth)
	}
	if err := s.repo.AddStudent(student); err != nil {
		return nil, err
	}
	s.logger.Info("student registered", zap.String("student_id", req.StudentID))
	return student, nil
}

// Get returns a student by id.
func (s *StudentService) Get(studentID string) (*models.Student, error) {
	student, ok := s.repo.StudentByID(studentID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "student not found: "+studentID)
	}
	return student, nil
}

// List returns every student.
func (s *StudentService) List() []*models.Student {
	return s.repo.Students()
}

// UpdateProfile applies the non-empty person fields through their
// validated setters.
func (s *StudentService) UpdateProfile(req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid student payload")
	}
	student, ok := s.repo.StudentByID(req.StudentID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "student not found: "+req.StudentID)
	}
	if req.Name != "" {
		if err := student.Person().SetName(req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != "" {
		if err := student.Person().SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.ContactNumber != "" {
		if err := student.Person().SetContactNumber(req.ContactNumber); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		if err := student.Person().SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	s.logger.Info("student profile updated", zap.String("student_id", req.StudentID))
	return student, nil
}

// UpdateGPA sets the student's GPA through its validated setter.
func (s *StudentService) UpdateGPA(studentID string, gpa float64) error {
	student, ok := s.repo.StudentByID(studentID)
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "student not found: "+studentID)
	}
	if err := student.SetGPA(gpa); err != nil {
		return err
	}
	s.logger.Info("student gpa updated",
		zap.String("student_id", studentID), zap.Float64("gpa", gpa))
	return nil
}

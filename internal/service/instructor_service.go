package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type instructorRepository interface {
	InstructorByID(id string) (*models.Instructor, bool)
	AddInstructor(i *models.Instructor) error
	Instructors() []*models.Instructor
}

// RegisterInstructorRequest describes a new instructor record.
type RegisterInstructorRequest struct {
	InstructorID  string `validate:"required"`
	Name          string `validate:"required"`
	Email         string `validate:"required"`
	ContactNumber string `validate:"required"`
	Address       string `validate:"required"`
}

// InstructorService manages instructor registration.
type InstructorService struct {
	repo      instructorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs InstructorService.
func NewInstructorService(repo instructorRepository, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, validator: validate, logger: logger}
}

// Register validates and inserts an instructor with a unique id.
func (s *InstructorService) Register(req RegisterInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid instructor payload")
	}
	instructor, err := models.NewInstructor(req.Name, req.Email, req.ContactNumber,
		req.Address, req.InstructorID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddInstructor(instructor); err != nil {
		return nil, err
	}
	s.logger.Info("instructor registered", zap.String("instructor_id", req.InstructorID))
	return instructor, nil
}

// Get returns an instructor by id.
func (s *InstructorService) Get(instructorID string) (*models.Instructor, error) {
	instructor, ok := s.repo.InstructorByID(instructorID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "instructor not found: "+instructorID)
	}
	return instructor, nil
}

// List returns every instructor.
func (s *InstructorService) List() []*models.Instructor {
	return s.repo.Instructors()
}

package service

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type courseRepository interface {
	CourseByCode(code string) (*models.Course, bool)
	InstructorByID(id string) (*models.Instructor, bool)
	StudentByID(id string) (*models.Student, bool)
	AddCourse(c *models.Course) error
	Courses() []*models.Course
}

// CreateCourseRequest describes a new course.
type CreateCourseRequest struct {
	CourseName   string `validate:"required"`
	CourseCode   string `validate:"required"`
	InstructorID string `validate:"required"`
	Units        int    `validate:"required,gt=0"`
}

// CreateAssignmentRequest describes coursework to issue on a course.
type CreateAssignmentRequest struct {
	CourseCode  string `validate:"required"`
	Title       string `validate:"required"`
	Description string
	DueDate     string `validate:"required"`
}

// RecordGradeRequest scores a student's work on an assignment.
type RecordGradeRequest struct {
	CourseCode      string  `validate:"required"`
	StudentID       string  `validate:"required"`
	AssignmentTitle string  `validate:"required"`
	Score           float64 `validate:"gte=0,lte=100"`
	Feedback        string
}

// SetScheduleRequest attaches the course's single meeting slot.
type SetScheduleRequest struct {
	CourseCode string `validate:"required"`
	Day        string `validate:"required"`
	Time       string `validate:"required"`
}

// CourseService manages courses, their assignments, grades and schedule.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// Create registers a course under an existing instructor and links the
// teaching relationship.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid course payload")
	}
	instructor, ok := s.repo.InstructorByID(req.InstructorID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "instructor not found: "+req.InstructorID)
	}
	course, err := models.NewCourse(req.CourseName, req.CourseCode, instructor, req.Units)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddCourse(course); err != nil {
		return nil, err
	}
	if err := instructor.TeachCourse(course); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, err
	}
	s.logger.Info("course created",
		zap.String("course_code", course.Code()),
		zap.String("instructor_id", instructor.InstructorID()))
	return course, nil
}

// Get returns a course by code.
func (s *CourseService) Get(code string) (*models.Course, error) {
	course, ok := s.repo.CourseByCode(code)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+code)
	}
	return course, nil
}

// List returns every course.
func (s *CourseService) List() []*models.Course {
	return s.repo.Courses()
}

// CreateAssignment issues coursework on a course. The due date must parse
// and lie in the future; failures leave the course untouched. The issuing
// instructor's assignment list is kept in step.
func (s *CourseService) CreateAssignment(req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid assignment payload")
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	assignment, err := course.AssignAssignment(req.Title, req.Description, req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := course.Instructor().AssignAssignment(assignment); err != nil &&
		!errors.Is(err, apperrors.ErrDuplicate) {
		s.logger.Warn("could not track assignment on instructor",
			zap.String("course_code", req.CourseCode),
			zap.String("title", req.Title), zap.Error(err))
	}
	s.logger.Info("assignment created",
		zap.String("course_code", req.CourseCode),
		zap.String("title", req.Title))
	return assignment, nil
}

// RecordGrade stores a Grade in the course mapping, the lightweight entry
// on the assignment and a ledger line on the student. The student must be
// enrolled on the course side and a (student, assignment) pair is graded
// at most once.
func (s *CourseService) RecordGrade(req RecordGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid grade payload")
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	assignment, ok := course.AssignmentByTitle(req.AssignmentTitle)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "assignment not found: "+req.AssignmentTitle)
	}
	student, ok := s.repo.StudentByID(req.StudentID)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "student not found: "+req.StudentID)
	}
	enrolled := false
	for _, enrolledStudent := range course.EnrolledStudents() {
		if enrolledStudent.StudentID() == student.StudentID() {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return nil, apperrors.Clone(apperrors.ErrValidation,
			"student "+req.StudentID+" not enrolled in "+req.CourseCode)
	}
	grade, err := models.NewGrade(student, assignment, req.Score, req.Feedback)
	if err != nil {
		return nil, err
	}
	if err := course.AddGrade(grade); err != nil {
		return nil, err
	}
	if err := assignment.AddGrade(req.Score, req.StudentID, req.Feedback); err != nil &&
		!errors.Is(err, apperrors.ErrDuplicate) {
		return nil, err
	}
	if err := student.AddLedgerGrade(course, strconv.FormatFloat(req.Score, 'f', -1, 64)); err != nil {
		return nil, err
	}
	s.logger.Info("grade recorded",
		zap.String("course_code", req.CourseCode),
		zap.String("student_id", req.StudentID),
		zap.String("assignment", req.AssignmentTitle))
	return grade, nil
}

// SetSchedule attaches the single schedule for a course.
func (s *CourseService) SetSchedule(req SetScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid schedule payload")
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	schedule, err := models.NewSchedule(course, req.Day, req.Time)
	if err != nil {
		return nil, err
	}
	if err := course.SetSchedule(schedule); err != nil {
		return nil, err
	}
	s.logger.Info("schedule set", zap.String("course_code", req.CourseCode))
	return schedule, nil
}

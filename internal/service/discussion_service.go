package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type discussionRepository interface {
	CourseByCode(code string) (*models.Course, bool)
}

// OpenThreadRequest starts a discussion on a course.
type OpenThreadRequest struct {
	CourseCode string `validate:"required"`
	Title      string `validate:"required"`
}

// PostRequest adds a message to an existing thread.
type PostRequest struct {
	CourseCode  string `validate:"required"`
	ThreadTitle string `validate:"required"`
	Message     string `validate:"required"`
}

// DiscussionService manages course discussion threads and posts.
type DiscussionService struct {
	repo      discussionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDiscussionService constructs DiscussionService.
func NewDiscussionService(repo discussionRepository, validate *validator.Validate, logger *zap.Logger) *DiscussionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiscussionService{repo: repo, validator: validate, logger: logger}
}

// OpenThread creates a thread on a course; the creator may be a student
// or an instructor.
func (s *DiscussionService) OpenThread(req OpenThreadRequest, creator models.Member) (*models.DiscussionThread, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid thread payload")
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	thread, err := models.NewDiscussionThread(uuid.NewString(), course, req.Title, creator, time.Now())
	if err != nil {
		return nil, err
	}
	if err := course.AddThread(thread); err != nil {
		return nil, err
	}
	s.logger.Info("thread opened",
		zap.String("course_code", req.CourseCode),
		zap.String("title", req.Title))
	return thread, nil
}

// Post adds a message to the named thread on a course.
func (s *DiscussionService) Post(req PostRequest, author models.Member) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid post payload")
	}
	course, ok := s.repo.CourseByCode(req.CourseCode)
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "course not found: "+req.CourseCode)
	}
	for _, thread := range course.Threads() {
		if thread.Title() == req.ThreadTitle {
			if err := thread.AddPost(author, req.Message, time.Now()); err != nil {
				return err
			}
			s.logger.Info("post added",
				zap.String("course_code", req.CourseCode),
				zap.String("thread", req.ThreadTitle))
			return nil
		}
	}
	return apperrors.Clone(apperrors.ErrNotFound, "thread not found: "+req.ThreadTitle)
}

// ThreadsFor lists threads across every course the member belongs to,
// dispatched through the Member capability rather than a type switch.
func (s *DiscussionService) ThreadsFor(member models.Member) []*models.DiscussionThread {
	var threads []*models.DiscussionThread
	for _, course := range member.Courses() {
		threads = append(threads, course.Threads()...)
	}
	return threads
}

package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type announcementStore interface {
	Announcements() []*models.Announcement
	AddAnnouncement(a *models.Announcement)
}

// CreateAnnouncementRequest describes a dated broadcast.
type CreateAnnouncementRequest struct {
	Title           string   `validate:"required"`
	Content         string   `validate:"required"`
	Date            string   `validate:"required"`
	RecipientGroups []string `validate:"required,min=1"`
}

// AnnouncementService creates and filters announcements by audience.
type AnnouncementService struct {
	store     announcementStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs AnnouncementService.
func NewAnnouncementService(store announcementStore, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{store: store, validator: validate, logger: logger}
}

// Create validates the date and recipient group tags and stores the
// announcement.
func (s *AnnouncementService) Create(req CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid announcement payload")
	}
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code,
			"invalid announcement date, expected "+models.DateLayout)
	}
	announcement, err := models.NewAnnouncement(uuid.NewString(), req.Title, req.Content,
		date, req.RecipientGroups)
	if err != nil {
		return nil, err
	}
	s.store.AddAnnouncement(announcement)
	s.logger.Info("announcement created",
		zap.String("id", announcement.ID()),
		zap.String("title", req.Title))
	return announcement, nil
}

// ListFor returns the announcements addressed to the member's role.
func (s *AnnouncementService) ListFor(member models.Member) []*models.Announcement {
	var visible []*models.Announcement
	for _, a := range s.store.Announcements() {
		if a.IsRecipient(string(member.Role())) {
			visible = append(visible, a)
		}
	}
	return visible
}

// ListAll returns every announcement.
func (s *AnnouncementService) ListAll() []*models.Announcement {
	return s.store.Announcements()
}

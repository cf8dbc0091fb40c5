package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type adminSource interface {
	Admins() []models.Admin
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthService checks admin credentials by plain equality against the
// repository's admin list. The credential source is an explicit dependency,
// not an ad hoc document read.
type AuthService struct {
	admins    adminSource
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs AuthService.
func NewAuthService(admins adminSource, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{admins: admins, validator: validate, logger: logger}
}

// Login returns the matching admin record or ErrInvalidCredentials.
func (s *AuthService) Login(req LoginRequest) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, "invalid login payload")
	}
	for _, admin := range s.admins.Admins() {
		if admin.Email == req.Email && admin.Password == req.Password {
			s.logger.Info("admin login", zap.String("email", admin.Email))
			return &admin, nil
		}
	}
	s.logger.Warn("admin login rejected", zap.String("email", req.Email))
	return nil, apperrors.Clone(apperrors.ErrInvalidCredentials, "")
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

type staticAdmins struct {
	admins []models.Admin
}

func (s *staticAdmins) Admins() []models.Admin { return s.admins }

func TestAuthServiceLogin(t *testing.T) {
	svc := NewAuthService(&staticAdmins{admins: []models.Admin{
		{Email: "admin@campus.edu", Password: "hunter2"},
	}}, nil, nil)

	admin, err := svc.Login(LoginRequest{Email: "admin@campus.edu", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "admin@campus.edu", admin.Email)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(&staticAdmins{admins: []models.Admin{
		{Email: "admin@campus.edu", Password: "hunter2"},
	}}, nil, nil)

	_, err := svc.Login(LoginRequest{Email: "admin@campus.edu", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Email: "other@campus.edu", Password: "hunter2"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	svc := NewAuthService(&staticAdmins{}, nil, nil)

	_, err := svc.Login(LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Login(LoginRequest{Email: "admin@campus.edu"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

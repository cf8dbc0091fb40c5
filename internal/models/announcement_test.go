package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

func TestAnnouncementGroupValidation(t *testing.T) {
	a, err := NewAnnouncement("a1", "Midterms", "Schedule posted", time.Now(), []string{"Student"})
	require.NoError(t, err)

	err = a.AddRecipientGroup("All Staff")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = a.AddRecipientGroup("Student")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, a.RecipientGroups(), 1)

	require.NoError(t, a.AddRecipientGroup("Instructor"))
	assert.True(t, a.IsRecipient("Instructor"))
	assert.False(t, a.IsRecipient("Admin"))
}

func TestAnnouncementRemoveGroup(t *testing.T) {
	a, err := NewAnnouncement("a1", "Midterms", "Schedule posted", time.Now(),
		[]string{"Student", "Instructor"})
	require.NoError(t, err)

	require.NoError(t, a.RemoveRecipientGroup("Student"))
	assert.False(t, a.IsRecipient("Student"))
	assert.ErrorIs(t, a.RemoveRecipientGroup("Student"), apperrors.ErrNotFound)
}

func TestNewAnnouncementRejectsBadGroup(t *testing.T) {
	_, err := NewAnnouncement("a1", "Midterms", "Schedule posted", time.Now(), []string{"bad group!"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewAnnouncementDeduplicatesGroups(t *testing.T) {
	a, err := NewAnnouncement("a1", "Midterms", "Schedule posted", time.Now(),
		[]string{"Student", "Student"})
	require.NoError(t, err)
	assert.Len(t, a.RecipientGroups(), 1)
}

package models

import (
	"time"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Announcement is a dated broadcast aimed at one or more recipient
// groups (role tags such as "Student" or "Instructor").
type Announcement struct {
	id      string
	title   string
	content string
	date    time.Time
	groups  []string
}

// NewAnnouncement validates every recipient group tag up front.
func NewAnnouncement(id, title, content string, date time.Time, groups []string) (*Announcement, error) {
	a := &Announcement{id: id, title: title, content: content, date: date}
	for _, g := range groups {
		if err := a.AddRecipientGroup(g); err != nil {
			if apperrors.FromError(err).Code == apperrors.ErrDuplicate.Code {
				continue
			}
			return nil, err
		}
	}
	return a, nil
}

func (a *Announcement) ID() string      { return a.id }
func (a *Announcement) Title() string   { return a.title }
func (a *Announcement) Content() string { return a.content }
func (a *Announcement) Date() time.Time { return a.date }

// RecipientGroups returns the ordered group tags.
func (a *Announcement) RecipientGroups() []string { return a.groups }

// AddRecipientGroup adds a tag; tags must be alphanumeric and unique.
func (a *Announcement) AddRecipientGroup(group string) error {
	if !isAlphanumeric(group) {
		return apperrors.Clone(apperrors.ErrValidation,
			"group name must be alphanumeric: "+group)
	}
	for _, g := range a.groups {
		if g == group {
			return apperrors.Clone(apperrors.ErrDuplicate, "group already a recipient: "+group)
		}
	}
	a.groups = append(a.groups, group)
	return nil
}

// RemoveRecipientGroup drops a tag from the recipient set.
func (a *Announcement) RemoveRecipientGroup(group string) error {
	for i, g := range a.groups {
		if g == group {
			a.groups = append(a.groups[:i], a.groups[i+1:]...)
			return nil
		}
	}
	return apperrors.Clone(apperrors.ErrNotFound, "group not a recipient: "+group)
}

// IsRecipient reports membership of a group tag.
func (a *Announcement) IsRecipient(group string) bool {
	for _, g := range a.groups {
		if g == group {
			return true
		}
	}
	return false
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

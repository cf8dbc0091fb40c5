package models

import (
	"strings"
	"time"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Post is a single message inside a discussion thread.
type Post struct {
	Author    string
	Timestamp time.Time
	Message   string
}

// DiscussionThread is a titled conversation attached to a course,
// created by a student or an instructor.
type DiscussionThread struct {
	id        string
	course    *Course
	title     string
	creator   Member
	createdAt time.Time
	posts     []Post
}

// NewDiscussionThread builds a thread; course and creator are required.
func NewDiscussionThread(id string, course *Course, title string, creator Member, createdAt time.Time) (*DiscussionThread, error) {
	if course == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "thread course is required")
	}
	if creator == nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "thread creator is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "thread title cannot be empty")
	}
	return &DiscussionThread{
		id:        id,
		course:    course,
		title:     title,
		creator:   creator,
		createdAt: createdAt,
	}, nil
}

func (t *DiscussionThread) ID() string           { return t.id }
func (t *DiscussionThread) Course() *Course      { return t.course }
func (t *DiscussionThread) Title() string        { return t.title }
func (t *DiscussionThread) Creator() Member      { return t.creator }
func (t *DiscussionThread) CreatedAt() time.Time { return t.createdAt }

// Posts returns the ordered posts.
func (t *DiscussionThread) Posts() []Post { return t.posts }

// AddPost appends a message; empty messages are rejected.
func (t *DiscussionThread) AddPost(author Member, message string, at time.Time) error {
	if author == nil {
		return apperrors.Clone(apperrors.ErrValidation, "post author is required")
	}
	if strings.TrimSpace(message) == "" {
		return apperrors.Clone(apperrors.ErrValidation, "cannot post an empty message")
	}
	t.posts = append(t.posts, Post{
		Author:    author.Person().Name(),
		Timestamp: at,
		Message:   message,
	})
	return nil
}

package models

import (
	"strings"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Role discriminates person-derived records.
type Role string

const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
)

// Member is the capability shared by every person-derived record:
// a role tag, validated personal details and a course list.
type Member interface {
	Role() Role
	Person() *PersonInfo
	Courses() []*Course
}

// PersonInfo holds the validated personal fields shared by students and
// instructors. Every setter re-validates; construction goes through the
// same setters so an invalid record can never exist.
type PersonInfo struct {
	name          string
	email         string
	contactNumber string
	address       string
}

// NewPersonInfo validates and assembles the shared person fields.
func NewPersonInfo(name, email, contactNumber, address string) (PersonInfo, error) {
	var p PersonInfo
	if err := p.SetName(name); err != nil {
		return PersonInfo{}, err
	}
	if err := p.SetEmail(email); err != nil {
		return PersonInfo{}, err
	}
	if err := p.SetContactNumber(contactNumber); err != nil {
		return PersonInfo{}, err
	}
	if err := p.SetAddress(address); err != nil {
		return PersonInfo{}, err
	}
	return p, nil
}

func (p *PersonInfo) Name() string { return p.name }

func (p *PersonInfo) SetName(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Clone(apperrors.ErrValidation, "name cannot be empty")
	}
	p.name = value
	return nil
}

func (p *PersonInfo) Email() string { return p.email }

func (p *PersonInfo) SetEmail(value string) error {
	if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
		return apperrors.Clone(apperrors.ErrValidation, "invalid email address")
	}
	p.email = value
	return nil
}

func (p *PersonInfo) ContactNumber() string { return p.contactNumber }

func (p *PersonInfo) SetContactNumber(value string) error {
	if len(value) < 10 || !isDigits(value) {
		return apperrors.Clone(apperrors.ErrValidation, "contact number must be at least 10 digits")
	}
	p.contactNumber = value
	return nil
}

func (p *PersonInfo) Address() string { return p.address }

func (p *PersonInfo) SetAddress(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Clone(apperrors.ErrValidation, "address cannot be empty")
	}
	p.address = value
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package models

import (
	"strings"
	"time"

	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Layouts for the persisted date formats.
const (
	DateLayout    = "2006-01-02"
	DueDateLayout = "2006-01-02T15:04:05"
)

// LedgerEntry is the simplified per-student grade ledger record, kept
// separate from the Grade entity.
type LedgerEntry struct {
	CourseName string
	CourseCode string
	Grade      string
}

// Student is a learner registered on the platform.
type Student struct {
	person    PersonInfo
	studentID string
	yearLevel string
	program   string
	gpa       float64
	birthDate *time.Time
	enrolled  []*Course
	ledger    []LedgerEntry
}

// NewStudent validates the person fields and builds a student record.
func NewStudent(name, email, contactNumber, address, studentID, yearLevel, program string) (*Student, error) {
	person, err := NewPersonInfo(name, email, contactNumber, address)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "student id cannot be empty")
	}
	return &Student{
		person:    person,
		studentID: studentID,
		yearLevel: yearLevel,
		program:   program,
	}, nil
}

func (s *Student) Role() Role        { return RoleStudent }
func (s *Student) Person() *PersonInfo { return &s.person }

// Courses implements Member; for a student these are the enrolled courses.
func (s *Student) Courses() []*Course { return s.enrolled }

func (s *Student) StudentID() string { return s.studentID }
func (s *Student) YearLevel() string { return s.yearLevel }
func (s *Student) Program() string   { return s.program }

func (s *Student) GPA() float64 { return s.gpa }

// SetGPA rejects values outside [0, 4.0].
func (s *Student) SetGPA(value float64) error {
	if value < 0 || value > 4.0 {
		return apperrors.Clone(apperrors.ErrValidation, "gpa must be between 0 and 4.0")
	}
	s.gpa = value
	return nil
}

func (s *Student) BirthDate() *time.Time { return s.birthDate }

func (s *Student) SetBirthDate(value time.Time) {
	s.birthDate = &value
}

// EnrolledCourses returns the ordered course list, student side only.
func (s *Student) EnrolledCourses() []*Course { return s.enrolled }

// Enroll appends a course to the student's own list. It never touches the
// course side; symmetric linkage is the repository's job.
func (s *Student) Enroll(course *Course) error {
	if course == nil {
		return apperrors.Clone(apperrors.ErrValidation, "course is required")
	}
	if s.IsEnrolledIn(course.Code()) {
		return apperrors.Clone(apperrors.ErrDuplicate, "student already enrolled in "+course.Code())
	}
	s.enrolled = append(s.enrolled, course)
	return nil
}

// Withdraw removes a course from the student's own list.
func (s *Student) Withdraw(course *Course) error {
	if course == nil {
		return apperrors.Clone(apperrors.ErrValidation, "course is required")
	}
	for i, c := range s.enrolled {
		if c.Code() == course.Code() {
			s.enrolled = append(s.enrolled[:i], s.enrolled[i+1:]...)
			return nil
		}
	}
	return apperrors.Clone(apperrors.ErrNotFound, "student not enrolled in "+course.Code())
}

func (s *Student) IsEnrolledIn(courseCode string) bool {
	for _, c := range s.enrolled {
		if c.Code() == courseCode {
			return true
		}
	}
	return false
}

// AddLedgerGrade records a course grade in the student's ledger.
func (s *Student) AddLedgerGrade(course *Course, grade string) error {
	if course == nil {
		return apperrors.Clone(apperrors.ErrValidation, "course is required")
	}
	s.ledger = append(s.ledger, LedgerEntry{
		CourseName: course.Name(),
		CourseCode: course.Code(),
		Grade:      grade,
	})
	return nil
}

// Ledger returns the ordered grade ledger entries.
func (s *Student) Ledger() []LedgerEntry { return s.ledger }

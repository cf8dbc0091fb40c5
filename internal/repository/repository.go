package repository

import (
	"encoding/json"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// Repository owns the canonical entity collections and orchestrates the
// phased load and the flatten-and-write save of the records document.
// All cross-references in the model are non-owning pointers into these
// collections; their lifetime is bounded by the repository's.
type Repository struct {
	logger *zap.Logger

	admins        []models.Admin
	students      []*models.Student
	instructors   []*models.Instructor
	courses       []*models.Course
	enrollments   []models.Enrollment
	announcements []*models.Announcement
}

// New constructs an empty repository.
func New(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{logger: logger}
}

func (r *Repository) Admins() []models.Admin { return r.admins }

// SetAdmins replaces the admin credential list.
func (r *Repository) SetAdmins(admins []models.Admin) { r.admins = admins }

func (r *Repository) Students() []*models.Student       { return r.students }
func (r *Repository) Instructors() []*models.Instructor { return r.instructors }
func (r *Repository) Courses() []*models.Course         { return r.courses }
func (r *Repository) Enrollments() []models.Enrollment  { return r.enrollments }

func (r *Repository) Announcements() []*models.Announcement { return r.announcements }

// AddAnnouncement keeps an announcement in memory; announcements are not
// part of the persisted document.
func (r *Repository) AddAnnouncement(a *models.Announcement) {
	r.announcements = append(r.announcements, a)
}

// StudentByID looks up a student by its unique id.
func (r *Repository) StudentByID(id string) (*models.Student, bool) {
	for _, s := range r.students {
		if s.StudentID() == id {
			return s, true
		}
	}
	return nil, false
}

// InstructorByID looks up an instructor by its unique id.
func (r *Repository) InstructorByID(id string) (*models.Instructor, bool) {
	for _, i := range r.instructors {
		if i.InstructorID() == id {
			return i, true
		}
	}
	return nil, false
}

// CourseByCode looks up a course by its unique code.
func (r *Repository) CourseByCode(code string) (*models.Course, bool) {
	for _, c := range r.courses {
		if c.Code() == code {
			return c, true
		}
	}
	return nil, false
}

// AddStudent inserts a student, enforcing id uniqueness by lookup.
func (r *Repository) AddStudent(s *models.Student) error {
	if _, exists := r.StudentByID(s.StudentID()); exists {
		return apperrors.Clone(apperrors.ErrDuplicate, "student id already exists: "+s.StudentID())
	}
	r.students = append(r.students, s)
	return nil
}

// AddInstructor inserts an instructor, enforcing id uniqueness by lookup.
func (r *Repository) AddInstructor(i *models.Instructor) error {
	if _, exists := r.InstructorByID(i.InstructorID()); exists {
		return apperrors.Clone(apperrors.ErrDuplicate, "instructor id already exists: "+i.InstructorID())
	}
	r.instructors = append(r.instructors, i)
	return nil
}

// AddCourse inserts a course, enforcing code uniqueness by lookup.
func (r *Repository) AddCourse(c *models.Course) error {
	if _, exists := r.CourseByCode(c.Code()); exists {
		return apperrors.Clone(apperrors.ErrDuplicate, "course code already exists: "+c.Code())
	}
	r.courses = append(r.courses, c)
	return nil
}

// IsEnrolled reports whether the (student, course) link exists.
func (r *Repository) IsEnrolled(s *models.Student, c *models.Course) bool {
	for _, e := range r.enrollments {
		if e.Student.StudentID() == s.StudentID() && e.Course.Code() == c.Code() {
			return true
		}
	}
	return false
}

// Enroll links a student and a course symmetrically: the student's course
// list, the course's student list and the enrollment set. A duplicate pair
// reports a conflict and changes nothing.
func (r *Repository) Enroll(s *models.Student, c *models.Course) error {
	if s == nil || c == nil {
		return apperrors.Clone(apperrors.ErrValidation, "student and course are required")
	}
	if r.IsEnrolled(s, c) {
		return apperrors.Clone(apperrors.ErrDuplicate,
			"student "+s.StudentID()+" already enrolled in "+c.Code())
	}
	// Either side may already hold the relation (phase-3 loads populate the
	// student side only); duplicate adds there are no-ops.
	if err := s.Enroll(c); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return err
	}
	if err := c.AddStudent(s); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return err
	}
	r.enrollments = append(r.enrollments, models.Enrollment{Student: s, Course: c})
	return nil
}

// Unenroll undoes Enroll on all three structures.
func (r *Repository) Unenroll(s *models.Student, c *models.Course) error {
	if s == nil || c == nil {
		return apperrors.Clone(apperrors.ErrValidation, "student and course are required")
	}
	for i, e := range r.enrollments {
		if e.Student.StudentID() == s.StudentID() && e.Course.Code() == c.Code() {
			r.enrollments = append(r.enrollments[:i], r.enrollments[i+1:]...)
			if err := s.Withdraw(c); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			if err := c.RemoveStudent(s); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			return nil
		}
	}
	return apperrors.Clone(apperrors.ErrNotFound,
		"student "+s.StudentID()+" not enrolled in "+c.Code())
}

// CoursesByStudent returns the courses linked to a student through the
// enrollment set.
func (r *Repository) CoursesByStudent(s *models.Student) []*models.Course {
	var courses []*models.Course
	for _, e := range r.enrollments {
		if e.Student.StudentID() == s.StudentID() {
			courses = append(courses, e.Course)
		}
	}
	return courses
}

// StudentsByCourse returns the students linked to a course through the
// enrollment set.
func (r *Repository) StudentsByCourse(c *models.Course) []*models.Student {
	var students []*models.Student
	for _, e := range r.enrollments {
		if e.Course.Code() == c.Code() {
			students = append(students, e.Student)
		}
	}
	return students
}

func (r *Repository) reset() {
	r.admins = nil
	r.students = nil
	r.instructors = nil
	r.courses = nil
	r.enrollments = nil
}

// Load reads the document and materializes the collections in five phases,
// each depending only on the previous ones: instructors, courses, students,
// enrollments, schedules. A missing or malformed document degrades to empty
// collections; a bad record is skipped with a warning, never an abort.
func (r *Repository) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("data file not found, starting with empty collections",
				zap.String("path", path))
		} else {
			r.logger.Warn("data file unreadable, starting with empty collections",
				zap.String("path", path), zap.Error(err))
		}
		r.reset()
		return nil
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Warn("malformed data document, starting with empty collections",
			zap.String("path", path), zap.Error(err))
		r.reset()
		return nil
	}

	r.reset()

	for _, rec := range doc.Admins {
		r.admins = append(r.admins, resolveAdmin(rec))
	}

	// Phase 1: instructors carry no forward references.
	instructorIndex := make(map[string]*models.Instructor, len(doc.Instructors))
	for _, rec := range doc.Instructors {
		instructor, err := resolveInstructor(rec)
		if err != nil {
			r.logger.Warn("skipping instructor record",
				zap.String("instructor_id", rec.InstructorID), zap.Error(err))
			continue
		}
		if err := r.AddInstructor(instructor); err != nil {
			r.logger.Warn("skipping duplicate instructor record",
				zap.String("instructor_id", rec.InstructorID))
			continue
		}
		instructorIndex[instructor.InstructorID()] = instructor
	}

	// Phase 2: courses require their instructor from phase 1.
	courseIndex := make(map[string]*models.Course, len(doc.Courses))
	for _, rec := range doc.Courses {
		course, err := resolveCourse(rec, instructorIndex)
		if err != nil {
			r.logger.Warn("skipping course record",
				zap.String("course_code", rec.CourseCode),
				zap.String("instructor_id", rec.InstructorID), zap.Error(err))
			continue
		}
		if err := r.AddCourse(course); err != nil {
			r.logger.Warn("skipping duplicate course record",
				zap.String("course_code", rec.CourseCode))
			continue
		}
		if err := course.Instructor().TeachCourse(course); err != nil &&
			!errors.Is(err, apperrors.ErrDuplicate) {
			r.logger.Warn("could not link course to instructor",
				zap.String("course_code", rec.CourseCode), zap.Error(err))
		}
		courseIndex[course.Code()] = course
	}

	// Phase 3: students resolve enrolled course summaries; this phase fills
	// the student side only, the course side waits for phase 4.
	for _, rec := range doc.Students {
		student, err := resolveStudent(rec, courseIndex, r.logger)
		if err != nil {
			r.logger.Warn("skipping student record",
				zap.String("student_id", rec.StudentID), zap.Error(err))
			continue
		}
		if err := r.AddStudent(student); err != nil {
			r.logger.Warn("skipping duplicate student record",
				zap.String("student_id", rec.StudentID))
		}
	}

	// Phase 4: enrollments need both ends present, then link symmetrically.
	for _, rec := range doc.Enrollments {
		student, okS := r.StudentByID(rec.StudentID)
		course, okC := courseIndex[rec.CourseCode]
		if !okS || !okC {
			if !okS {
				r.logger.Warn("enrollment references unknown student",
					zap.String("student_id", rec.StudentID))
			}
			if !okC {
				r.logger.Warn("enrollment references unknown course",
					zap.String("course_code", rec.CourseCode))
			}
			continue
		}
		if err := r.Enroll(student, course); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			r.logger.Warn("could not link enrollment",
				zap.String("student_id", rec.StudentID),
				zap.String("course_code", rec.CourseCode), zap.Error(err))
		}
	}

	// Phase 5: schedules need their course present.
	for _, rec := range doc.Schedules {
		schedule, err := resolveSchedule(rec, courseIndex)
		if err != nil {
			r.logger.Warn("skipping schedule record",
				zap.String("course_code", rec.CourseCode), zap.Error(err))
			continue
		}
		if err := schedule.Course().SetSchedule(schedule); err != nil {
			r.logger.Warn("skipping extra schedule for course",
				zap.String("course_code", rec.CourseCode), zap.Error(err))
		}
	}

	r.logger.Info("data loaded",
		zap.Int("admins", len(r.admins)),
		zap.Int("instructors", len(r.instructors)),
		zap.Int("courses", len(r.courses)),
		zap.Int("students", len(r.students)),
		zap.Int("enrollments", len(r.enrollments)))
	return nil
}

// Save flattens every collection into one document and overwrites the file
// whole. Enrollments are regenerated from the student side. A write failure
// is reported and leaves the in-memory state unchanged.
func (r *Repository) Save(path string) error {
	doc := document{
		Admins:      make([]adminRecord, 0, len(r.admins)),
		Students:    make([]studentRecord, 0, len(r.students)),
		Instructors: make([]instructorRecord, 0, len(r.instructors)),
		Courses:     make([]courseRecord, 0, len(r.courses)),
		Enrollments: make([]enrollmentRecord, 0, len(r.enrollments)),
		Schedules:   make([]scheduleRecord, 0),
	}

	for _, a := range r.admins {
		doc.Admins = append(doc.Admins, flattenAdmin(a))
	}
	for _, s := range r.students {
		doc.Students = append(doc.Students, flattenStudent(s))
		for _, c := range s.EnrolledCourses() {
			doc.Enrollments = append(doc.Enrollments, enrollmentRecord{
				StudentID:  s.StudentID(),
				CourseCode: c.Code(),
			})
		}
	}
	for _, i := range r.instructors {
		doc.Instructors = append(doc.Instructors, flattenInstructor(i))
	}
	for _, c := range r.courses {
		doc.Courses = append(doc.Courses, flattenCourse(c))
		if c.Schedule() != nil {
			doc.Schedules = append(doc.Schedules, flattenSchedule(c.Schedule()))
		}
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, "encode data document")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, "write data document")
	}

	r.logger.Info("data saved", zap.String("path", path),
		zap.Int("students", len(doc.Students)),
		zap.Int("enrollments", len(doc.Enrollments)))
	return nil
}

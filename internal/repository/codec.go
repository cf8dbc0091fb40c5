package repository

import (
	"time"

	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
)

// The codec converts between entities and flat records. Flattening emits
// primitive fields and unique-key references; resolution takes the
// already-materialized collections it needs as context and reports, but
// does not abort on, unresolvable references.

func flattenInstructor(in *models.Instructor) instructorRecord {
	taught := make([]string, 0, len(in.CoursesTaught()))
	for _, c := range in.CoursesTaught() {
		taught = append(taught, c.Code())
	}
	return instructorRecord{
		InstructorID:  in.InstructorID(),
		Name:          in.Person().Name(),
		Email:         in.Person().Email(),
		ContactNumber: in.Person().ContactNumber(),
		Address:       in.Person().Address(),
		Role:          string(in.Role()),
		CoursesTaught: taught,
	}
}

// resolveInstructor rebuilds an instructor from its flat record. The
// courses_taught keys are not resolved here: the teaching relationship is
// re-established from the course side during the course phase.
func resolveInstructor(rec instructorRecord) (*models.Instructor, error) {
	return models.NewInstructor(rec.Name, rec.Email, rec.ContactNumber, rec.Address, rec.InstructorID)
}

func flattenCourse(c *models.Course) courseRecord {
	return courseRecord{
		CourseName:   c.Name(),
		CourseCode:   c.Code(),
		InstructorID: c.Instructor().InstructorID(),
		Units:        c.Units(),
	}
}

// resolveCourse requires the instructor collection; a missing instructor
// reference fails the whole record since a course's instructor is required.
func resolveCourse(rec courseRecord, instructors map[string]*models.Instructor) (*models.Course, error) {
	instructor, ok := instructors[rec.InstructorID]
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrReferenceNotFound,
			"instructor not found: "+rec.InstructorID)
	}
	return models.NewCourse(rec.CourseName, rec.CourseCode, instructor, rec.Units)
}

func flattenStudent(s *models.Student) studentRecord {
	enrolled := make([]courseRecord, 0, len(s.EnrolledCourses()))
	for _, c := range s.EnrolledCourses() {
		enrolled = append(enrolled, flattenCourse(c))
	}
	rec := studentRecord{
		StudentID:       s.StudentID(),
		Name:            s.Person().Name(),
		Email:           s.Person().Email(),
		ContactNumber:   s.Person().ContactNumber(),
		Address:         s.Person().Address(),
		YearLevel:       s.YearLevel(),
		Program:         s.Program(),
		GPA:             s.GPA(),
		EnrolledCourses: enrolled,
	}
	if s.BirthDate() != nil {
		rec.BirthDate = s.BirthDate().Format(models.DateLayout)
	}
	return rec
}

// resolveStudent requires the course collection for the nested enrolled
// course summaries. An unknown course code or malformed birth date skips
// that field only; the student itself survives.
func resolveStudent(rec studentRecord, courses map[string]*models.Course, logger *zap.Logger) (*models.Student, error) {
	student, err := models.NewStudent(rec.Name, rec.Email, rec.ContactNumber, rec.Address,
		rec.StudentID, rec.YearLevel, rec.Program)
	if err != nil {
		return nil, err
	}
	if err := student.SetGPA(rec.GPA); err != nil {
		return nil, err
	}
	if rec.BirthDate != "" {
		birth, err := time.Parse(models.DateLayout, rec.BirthDate)
		if err != nil {
			logger.Warn("malformed birth date, skipping field",
				zap.String("student_id", rec.StudentID),
				zap.String("birth_date", rec.BirthDate))
		} else {
			student.SetBirthDate(birth)
		}
	}
	for _, summary := range rec.EnrolledCourses {
		course, ok := courses[summary.CourseCode]
		if !ok {
			logger.Warn("enrolled course not found, skipping relationship",
				zap.String("student_id", rec.StudentID),
				zap.String("course_code", summary.CourseCode))
			continue
		}
		if err := student.Enroll(course); err != nil {
			logger.Warn("skipping enrolled course",
				zap.String("student_id", rec.StudentID),
				zap.String("course_code", summary.CourseCode),
				zap.Error(err))
		}
	}
	return student, nil
}

func flattenSchedule(s *models.Schedule) scheduleRecord {
	return scheduleRecord{
		CourseCode: s.Course().Code(),
		Day:        s.Day(),
		Time:       s.Time(),
	}
}

// resolveSchedule requires the course collection.
func resolveSchedule(rec scheduleRecord, courses map[string]*models.Course) (*models.Schedule, error) {
	course, ok := courses[rec.CourseCode]
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrReferenceNotFound,
			"course not found: "+rec.CourseCode)
	}
	return models.NewSchedule(course, rec.Day, rec.Time)
}

func flattenAdmin(a models.Admin) adminRecord {
	return adminRecord{Email: a.Email, Password: a.Password}
}

func resolveAdmin(rec adminRecord) models.Admin {
	return models.Admin{Email: rec.Email, Password: rec.Password}
}

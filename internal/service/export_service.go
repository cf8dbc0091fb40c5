package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/models"
	apperrors "github.com/elearnhq/campus-records/pkg/errors"
	"github.com/elearnhq/campus-records/pkg/export"
)

// Export formats supported by the artifact renderers.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type exportSource interface {
	CourseByCode(code string) (*models.Course, bool)
	StudentByID(id string) (*models.Student, bool)
}

type artifactStore interface {
	Save(filename string, data []byte) (string, error)
}

// ExportService renders roster and transcript artifacts to the export
// store.
type ExportService struct {
	source exportSource
	store  artifactStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(source exportSource, store artifactStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		source: source,
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// CourseRoster writes the enrolled-student table for a course and returns
// the stored filename.
func (s *ExportService) CourseRoster(courseCode, format string) (string, error) {
	course, ok := s.source.CourseByCode(courseCode)
	if !ok {
		return "", apperrors.Clone(apperrors.ErrNotFound, "course not found: "+courseCode)
	}
	data := export.Dataset{
		Title:   "Roster " + course.Name(),
		Columns: []string{"student_id", "name", "year_level", "program", "gpa"},
	}
	for _, student := range course.EnrolledStudents() {
		data.AddRow(
			student.StudentID(),
			student.Person().Name(),
			student.YearLevel(),
			student.Program(),
			strconv.FormatFloat(student.GPA(), 'f', 2, 64),
		)
	}
	return s.write(fmt.Sprintf("roster_%s.%s", course.Code(), format), format, data)
}

// StudentTranscript writes the student's grade ledger and returns the
// stored filename.
func (s *ExportService) StudentTranscript(studentID, format string) (string, error) {
	student, ok := s.source.StudentByID(studentID)
	if !ok {
		return "", apperrors.Clone(apperrors.ErrNotFound, "student not found: "+studentID)
	}
	data := export.Dataset{
		Title:   "Transcript " + student.Person().Name(),
		Columns: []string{"course_code", "course_name", "grade"},
	}
	for _, entry := range student.Ledger() {
		data.AddRow(entry.CourseCode, entry.CourseName, entry.Grade)
	}
	return s.write(fmt.Sprintf("transcript_%s.%s", student.StudentID(), format), format, data)
}

func (s *ExportService) write(filename, format string, data export.Dataset) (string, error) {
	var (
		raw []byte
		err error
	)
	switch format {
	case FormatCSV:
		raw, err = s.csv.Render(data)
	case FormatPDF:
		raw, err = s.pdf.Render(data)
	default:
		return "", apperrors.Clone(apperrors.ErrValidation, "unsupported export format: "+format)
	}
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrInternal.Code, "render export")
	}
	name, err := s.store.Save(filename, raw)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrInternal.Code, "store export")
	}
	s.logger.Info("export written", zap.String("file", name), zap.String("format", format))
	return name, nil
}

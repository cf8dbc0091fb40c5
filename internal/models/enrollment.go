package models

// Enrollment links a student and a course. The pair is unique across the
// whole enrollment set; both sides of the relationship are maintained by
// the repository, not by this record.
type Enrollment struct {
	Student *Student
	Course  *Course
}

// Admin is a platform administrator credential record, checked by plain
// equality only.
type Admin struct {
	Email    string
	Password string
}

package repository

// document mirrors the on-disk JSON layout: one flat record list per
// collection, relationships reduced to unique keys. The only nested
// relationship is the course summary list on a student record.
type document struct {
	Admins      []adminRecord      `json:"admins"`
	Students    []studentRecord    `json:"students"`
	Instructors []instructorRecord `json:"instructors"`
	Courses     []courseRecord     `json:"courses"`
	Enrollments []enrollmentRecord `json:"enrollments"`
	Schedules   []scheduleRecord   `json:"schedules"`
}

type adminRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type instructorRecord struct {
	InstructorID  string   `json:"instructor_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	ContactNumber string   `json:"contact_number"`
	Address       string   `json:"address"`
	Role          string   `json:"role"`
	CoursesTaught []string `json:"courses_taught"`
}

type courseRecord struct {
	CourseName   string `json:"course_name"`
	CourseCode   string `json:"course_code"`
	InstructorID string `json:"instructor_id"`
	Units        int    `json:"units"`
}

type studentRecord struct {
	StudentID       string         `json:"student_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	ContactNumber   string         `json:"contact_number"`
	Address         string         `json:"address"`
	YearLevel       string         `json:"year_level"`
	Program         string         `json:"program"`
	GPA             float64        `json:"gpa"`
	BirthDate       string         `json:"birth_date,omitempty"`
	EnrolledCourses []courseRecord `json:"enrolled_courses"`
}

// enrollmentRecord is derived on save from each student's course list;
// the enrollment collection itself is never authoritative on disk.
type enrollmentRecord struct {
	StudentID  string `json:"student_id"`
	CourseCode string `json:"course_code"`
}

type scheduleRecord struct {
	CourseCode string `json:"course_code"`
	Day        string `json:"day"`
	Time       string `json:"time"`
}

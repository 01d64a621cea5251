package seed

import (
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/campusadmin/internal/app/models"
)

// Target receives the default data
type Target interface {
	AddUser(user appModels.User, password string) error
	CreateStudent(draft appModels.StudentDraft) appModels.Student
	CreateCourse(draft appModels.CourseDraft) appModels.Course
}

// Options controls what CreateDefaultData loads
type Options struct {
	AdminUsername string
	AdminPassword string
	// SampleRecords adds a handful of students and courses
	SampleRecords bool
}

// CreateDefaultData creates the admin account and, optionally, sample
// records. Every failure is collected so one bad entry does not stop the rest.
func CreateDefaultData(target Target, opts Options, lgr zerolog.Logger) error {
	var finalErr error

	lgr.Info().Msg("Creating default admin user...")
	admin := appModels.User{
		Username: opts.AdminUsername,
		FullName: "System Administrator",
		Email:    opts.AdminUsername + "@college.edu",
		Role:     "Admin",
	}
	if err := target.AddUser(admin, opts.AdminPassword); err != nil {
		lgr.Error().Err(err).Str("username", opts.AdminUsername).Msg("Error creating admin user")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Str("username", opts.AdminUsername).Msg("Admin user ready")
	}

	if !opts.SampleRecords {
		return finalErr
	}

	for _, c := range DefaultCourses() {
		target.CreateCourse(c)
	}
	for _, s := range DefaultStudents() {
		target.CreateStudent(s)
	}
	lgr.Info().
		Int("courses", len(DefaultCourses())).
		Int("students", len(DefaultStudents())).
		Msg("Sample records created")

	return finalErr
}

// DefaultCourses returns the sample course catalogue
func DefaultCourses() []appModels.CourseDraft {
	return []appModels.CourseDraft{
		{Name: "Computer Science", Description: "Algorithms, systems and software engineering", Duration: "4 years", Credits: 240, CourseCode: "CS101", Department: "Engineering"},
		{Name: "Mathematics", Description: "Pure and applied mathematics", Duration: "3 years", Credits: 180, CourseCode: "MA101", Department: "Science"},
		{Name: "Physics", Description: "Classical and modern physics", Duration: "3 years", Credits: 180, CourseCode: "PH101", Department: "Science"},
		{Name: "Business Administration", Duration: "2 years", Credits: 120, CourseCode: "BA201", Department: "Management"},
	}
}

// DefaultStudents returns the sample students
func DefaultStudents() []appModels.StudentDraft {
	return []appModels.StudentDraft{
		{Name: "Alice Johnson", Email: "alice@college.edu", Phone: "555-0101", Course: "Mathematics", EnrollmentDate: "2024-09-01", RollNumber: "MA-001", Gender: "Female", DateOfBirth: "2005-03-14"},
		{Name: "Bob Smith", Email: "bob@college.edu", Phone: "555-0102", Course: "Physics", EnrollmentDate: "2024-09-01", RollNumber: "PH-001", Gender: "Male", DateOfBirth: "2004-11-02"},
		{Name: "Carol Diaz", Email: "carol@college.edu", Phone: "555-0103", Course: "Computer Science", EnrollmentDate: "2023-09-04", RollNumber: "CS-014", Gender: "Female", Address: "12 Elm Street"},
	}
}

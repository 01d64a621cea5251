package models

import "time"

// DateLayout is the wire and form format for calendar dates
const DateLayout = "2006-01-02"

// StudentDraft holds every student field except the backend-assigned identifier.
// It is the body of create and update requests and the state of the edit form.
type StudentDraft struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Course         string `json:"course" validate:"required"`
	EnrollmentDate string `json:"enrollmentDate" validate:"required,datetime=2006-01-02"`
	RollNumber     string `json:"rollNumber"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender"`
}

// Student is a student record as returned by the backend
type Student struct {
	ID int64 `json:"id"`
	StudentDraft
}

// NewStudentDraft returns the empty form used by "Add Student"; the enrollment
// date defaults to the given day.
func NewStudentDraft(today time.Time) StudentDraft {
	return StudentDraft{EnrollmentDate: today.Format(DateLayout)}
}

// Initial returns the first letter of the student's name for avatars
func (s Student) Initial() string {
	return initial(s.Name)
}

// StudentFields maps form input names onto typed setters
var StudentFields = FieldSet[StudentDraft]{
	"name":           func(d *StudentDraft, v string) error { d.Name = v; return nil },
	"email":          func(d *StudentDraft, v string) error { d.Email = v; return nil },
	"phone":          func(d *StudentDraft, v string) error { d.Phone = v; return nil },
	"course":         func(d *StudentDraft, v string) error { d.Course = v; return nil },
	"enrollmentDate": func(d *StudentDraft, v string) error { d.EnrollmentDate = v; return nil },
	"rollNumber":     func(d *StudentDraft, v string) error { d.RollNumber = v; return nil },
	"address":        func(d *StudentDraft, v string) error { d.Address = v; return nil },
	"dateOfBirth":    func(d *StudentDraft, v string) error { d.DateOfBirth = v; return nil },
	"gender":         func(d *StudentDraft, v string) error { d.Gender = v; return nil },
}

// GenderOptions lists the selectable values of the gender field
var GenderOptions = []string{"Male", "Female", "Other"}

// GenderChoices returns the dropdown entries for a form whose current value is
// current. A value the backend stored outside GenderOptions stays selectable
// so that saving the form does not clear it.
func GenderChoices(current string) []string {
	if current == "" {
		return GenderOptions
	}
	for _, option := range GenderOptions {
		if option == current {
			return GenderOptions
		}
	}
	return append([]string{current}, GenderOptions...)
}
